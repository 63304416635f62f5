package server

import (
	"encoding/json"
	"net/http"

	"github.com/JiriTill/lekarprolidi/internal/config"
	"github.com/JiriTill/lekarprolidi/internal/pipeline/extract"
	"github.com/JiriTill/lekarprolidi/internal/summarize"
)

type HealthResponse struct {
	Status    string `json:"status"`
	OCREngine string `json:"ocr_engine"`
	OpenAI    string `json:"openai"`
	Model     string `json:"model"`
	Language  string `json:"ocr_language"`
	Port      int    `json:"port"`
}

// HealthHandler returns a handler for GET /health.
func HealthHandler(cfg config.Config, engine *extract.Engine, tr *summarize.Translator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		openaiStatus := "missing_key"
		if tr.Configured() {
			openaiStatus = "configured"
		}

		resp := HealthResponse{
			Status:    "ok",
			OCREngine: engine.State().String(),
			OpenAI:    openaiStatus,
			Model:     cfg.OpenAI.Model,
			Language:  cfg.OCR.Language,
			Port:      cfg.Port,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
