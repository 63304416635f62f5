package config

import (
	"os"
	"strconv"
)

type OCRConfig struct {
	// Language is the Tesseract language hint. The product is Czech;
	// this is an operator setting, not a per-request parameter.
	Language string `json:"language"`
}

type OpenAIConfig struct {
	APIKey        string  `json:"-"`
	BaseURL       string  `json:"base_url"`
	Model         string  `json:"model"`
	Temperature   float32 `json:"temperature"`
	MaxTokens     int     `json:"max_tokens"`
	ContextTokens int     `json:"context_tokens"`
	Timeout       float64 `json:"timeout"`
}

type PipelineConfig struct {
	MaxUploadBytes int64   `json:"max_upload_bytes"`
	RasterScale    float64 `json:"raster_scale"`
	MaxImageEdge   int     `json:"max_image_edge"`
}

type Config struct {
	Host     string         `json:"host"`
	Port     int            `json:"port"`
	OCR      OCRConfig      `json:"ocr"`
	OpenAI   OpenAIConfig   `json:"openai"`
	Pipeline PipelineConfig `json:"pipeline"`
}

func DefaultConfig() Config {
	return Config{
		Host: "127.0.0.1",
		Port: 8750,
		OCR: OCRConfig{
			Language: "ces",
		},
		OpenAI: OpenAIConfig{
			BaseURL:       "https://api.openai.com/v1",
			Model:         "gpt-4o",
			Temperature:   0.4,
			MaxTokens:     2000,
			ContextTokens: 128000,
			Timeout:       90.0,
		},
		Pipeline: PipelineConfig{
			MaxUploadBytes: 15 * 1024 * 1024,
			RasterScale:    2.0,
			MaxImageEdge:   1200,
		},
	}
}

func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")

	if host := os.Getenv("LPL_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("LPL_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if base := os.Getenv("LPL_OPENAI_BASE_URL"); base != "" {
		cfg.OpenAI.BaseURL = base
	}
	if model := os.Getenv("LPL_OPENAI_MODEL"); model != "" {
		cfg.OpenAI.Model = model
	}
	if lang := os.Getenv("LPL_OCR_LANGUAGE"); lang != "" {
		cfg.OCR.Language = lang
	}
	if max := os.Getenv("LPL_MAX_UPLOAD_BYTES"); max != "" {
		if m, err := strconv.ParseInt(max, 10, 64); err == nil && m > 0 {
			cfg.Pipeline.MaxUploadBytes = m
		}
	}

	return cfg
}
