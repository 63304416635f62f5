package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JiriTill/lekarprolidi/internal/pipeline"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, reason, message string) {
	writeJSON(w, status, map[string]string{
		"reason": reason,
		"error":  message,
	})
}

type manualTextRequest struct {
	Text string `json:"text"`
}

// IngestRouter serves the document upload flow: start an ingestion
// attempt, poll its status, or enter text by hand.
func IngestRouter(ctrl *pipeline.Controller, maxUploadBytes int64) chi.Router {
	r := chi.NewRouter()

	r.Post("/upload", func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_upload",
				"Nahrání souboru se nezdařilo.")
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_upload",
				"Nahrání souboru se nezdařilo.")
			return
		}

		mediaType := header.Header.Get("Content-Type")
		if mediaType == "" {
			mediaType = http.DetectContentType(data)
		}

		doc := pipeline.UploadedDocument{
			Filename:  header.Filename,
			MediaType: mediaType,
			Data:      data,
		}
		switch err := ctrl.StartIngestion(doc); {
		case errors.Is(err, pipeline.ErrBusy):
			writeError(w, http.StatusConflict, "busy",
				"Jiný dokument se právě zpracovává.")
			return
		case errors.Is(err, pipeline.ErrUnsupportedType):
			writeError(w, http.StatusUnsupportedMediaType,
				pipeline.FailureUnsupportedFileType.String(),
				pipeline.FailureUnsupportedFileType.Message())
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, "internal",
				"Dokument se nepodařilo zpracovat.")
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]string{
			"status": pipeline.StatusReading.String(),
		})
	})

	r.Post("/text", func(w http.ResponseWriter, r *http.Request) {
		var req manualTextRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request",
				"Neplatný požadavek.")
			return
		}
		if err := ctrl.SetManualText(req.Text); errors.Is(err, pipeline.ErrBusy) {
			writeError(w, http.StatusConflict, "busy",
				"Jiný dokument se právě zpracovává.")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status": pipeline.StatusIdle.String(),
		})
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ctrl.Snapshot())
	})

	return r
}
