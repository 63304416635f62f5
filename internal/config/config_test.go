package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8750 {
		t.Errorf("expected port 8750, got %d", cfg.Port)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("expected host 127.0.0.1, got %s", cfg.Host)
	}
	if cfg.OCR.Language != "ces" {
		t.Errorf("expected Czech OCR language, got %s", cfg.OCR.Language)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("expected gpt-4o, got %s", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Temperature != 0.4 {
		t.Errorf("expected temperature 0.4, got %v", cfg.OpenAI.Temperature)
	}
	if cfg.OpenAI.MaxTokens != 2000 {
		t.Errorf("expected 2000 max tokens, got %d", cfg.OpenAI.MaxTokens)
	}
	if cfg.Pipeline.RasterScale != 2.0 {
		t.Errorf("expected 2x raster scale, got %v", cfg.Pipeline.RasterScale)
	}
	if cfg.Pipeline.MaxUploadBytes != 15*1024*1024 {
		t.Errorf("expected 15MB upload limit, got %d", cfg.Pipeline.MaxUploadBytes)
	}
}

func TestLoadConfigEnvVars(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LPL_PORT", "9999")
	t.Setenv("LPL_OPENAI_BASE_URL", "http://localhost:5555/v1")
	t.Setenv("LPL_OCR_LANGUAGE", "eng")
	t.Setenv("LPL_MAX_UPLOAD_BYTES", "1024")

	cfg := LoadConfig()

	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("expected API key from env, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.Port)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:5555/v1" {
		t.Errorf("expected base URL override, got %s", cfg.OpenAI.BaseURL)
	}
	if cfg.OCR.Language != "eng" {
		t.Errorf("expected language override, got %s", cfg.OCR.Language)
	}
	if cfg.Pipeline.MaxUploadBytes != 1024 {
		t.Errorf("expected upload limit override, got %d", cfg.Pipeline.MaxUploadBytes)
	}
}

func TestLoadConfigIgnoresBadValues(t *testing.T) {
	t.Setenv("LPL_PORT", "not-a-number")
	t.Setenv("LPL_MAX_UPLOAD_BYTES", "-5")

	cfg := LoadConfig()

	if cfg.Port != 8750 {
		t.Errorf("bad port should keep default, got %d", cfg.Port)
	}
	if cfg.Pipeline.MaxUploadBytes != 15*1024*1024 {
		t.Errorf("negative limit should keep default, got %d", cfg.Pipeline.MaxUploadBytes)
	}
}
