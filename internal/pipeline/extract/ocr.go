package extract

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// EngineState is the OCR engine's lifecycle. The engine loads lazily on
// first use and then stays resident for the daemon's lifetime.
type EngineState int

const (
	EngineUninitialized EngineState = iota
	EngineLoading
	EngineReady
	EngineFailed
)

func (s EngineState) String() string {
	switch s {
	case EngineUninitialized:
		return "uninitialized"
	case EngineLoading:
		return "loading"
	case EngineReady:
		return "ready"
	case EngineFailed:
		return "failed"
	}
	return "unknown"
}

// PageProgress reports per-page OCR completion for UI feedback. It is
// observational only and never affects the recognized text.
type PageProgress func(done, total int)

// Engine wraps a single resident Tesseract client. Tesseract is a
// stateful worker that cannot recognize two images at once, so all
// recognition is serialized behind the mutex.
type Engine struct {
	language string

	mu     sync.Mutex
	state  EngineState
	client *gosseract.Client

	// recognizeFn stands in for Tesseract in tests.
	recognizeFn func(image []byte) (string, error)
}

// NewEngine creates an uninitialized engine with a fixed language hint.
func NewEngine(language string) *Engine {
	return &Engine{language: language}
}

func (e *Engine) State() EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Init loads the Tesseract client. Safe to call repeatedly; a previous
// failure is retried, a ready engine is a no-op.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initLocked()
}

func (e *Engine) initLocked() error {
	if e.state == EngineReady {
		return nil
	}
	e.state = EngineLoading
	client := gosseract.NewClient()
	if err := client.SetLanguage(e.language); err != nil {
		client.Close()
		e.state = EngineFailed
		return fmt.Errorf("ocr language %q: %w", e.language, err)
	}
	e.client = client
	e.state = EngineReady
	slog.Info("OCR engine ready", "language", e.language)
	return nil
}

// Close releases the Tesseract client.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client != nil {
		e.client.Close()
		e.client = nil
	}
	e.state = EngineUninitialized
}

// Recognize extracts text from one encoded raster image.
func (e *Engine) Recognize(image []byte) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.recognizeLocked(image)
}

func (e *Engine) recognizeLocked(image []byte) (string, error) {
	if e.recognizeFn != nil {
		return e.recognizeFn(image)
	}
	if err := e.initLocked(); err != nil {
		return "", err
	}
	if err := e.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return text, nil
}

// RecognizePages runs OCR over rasterized PDF pages in page order and
// joins the results with newlines. A failing page contributes empty text
// but never aborts the loop: partial recognition across pages is
// acceptable, order is not negotiable.
func (e *Engine) RecognizePages(pages []PageImage, progress PageProgress) (string, int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	texts := make([]string, 0, len(pages))
	failures := 0
	for i, page := range pages {
		text, err := e.recognizeLocked(page.PNG)
		if err != nil {
			slog.Warn("OCR failed for page", "page", page.Index, "error", err)
			failures++
			text = ""
		}
		texts = append(texts, text)
		if progress != nil {
			progress(i+1, len(pages))
		}
	}
	return strings.Join(texts, "\n"), failures
}
