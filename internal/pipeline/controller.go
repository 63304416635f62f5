package pipeline

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/JiriTill/lekarprolidi/internal/config"
	"github.com/JiriTill/lekarprolidi/internal/pipeline/extract"
)

var (
	// ErrBusy means an ingestion attempt is already in flight.
	ErrBusy = errors.New("ingestion already running")
	// ErrUnsupportedType means the classifier rejected the file. The
	// pipeline is never started for these.
	ErrUnsupportedType = errors.New("unsupported file type")
)

// UploadedDocument is one user upload: raw bytes plus the declared media
// type. It lives only for the duration of a single ingestion attempt and
// is never written to disk.
type UploadedDocument struct {
	Filename  string
	MediaType string
	Data      []byte
}

// Recognizer is the OCR engine surface the controller needs.
type Recognizer interface {
	Recognize(image []byte) (string, error)
	RecognizePages(pages []extract.PageImage, progress extract.PageProgress) (string, int)
}

// extractor covers the document conversion primitives; swapped out in
// tests.
type extractor interface {
	PDFText(data []byte) (string, int, error)
	RasterizePDF(data []byte, scale float64) ([]extract.PageImage, error)
	ShrinkImage(data []byte, maxEdge int) ([]byte, error)
}

type docExtractor struct{}

func (docExtractor) PDFText(data []byte) (string, int, error) {
	return extract.PDFText(data)
}

func (docExtractor) RasterizePDF(data []byte, scale float64) ([]extract.PageImage, error) {
	return extract.RasterizePDF(data, scale)
}

func (docExtractor) ShrinkImage(data []byte, maxEdge int) ([]byte, error) {
	return extract.ShrinkImage(data, maxEdge)
}

// Snapshot is a point-in-time view of the session for the status API.
type Snapshot struct {
	Status     Status        `json:"status"`
	Reason     FailureReason `json:"-"`
	ReasonCode string        `json:"reason,omitempty"`
	Message    string        `json:"message"`
	Seconds    int           `json:"seconds"`
	PagesDone  int           `json:"pages_done,omitempty"`
	PagesTotal int           `json:"pages_total,omitempty"`
	Text       string        `json:"text,omitempty"`
}

// Controller owns one volatile translation session: the normalized text,
// the last translation output, and the lifecycle of the active ingestion
// attempt. One attempt runs at a time; pages are processed strictly in
// order. Nothing here survives a daemon restart.
type Controller struct {
	cfg    config.Config
	engine Recognizer
	ext    extractor

	mu         sync.Mutex
	running    bool
	status     Status
	reason     FailureReason
	message    string
	text       string
	output     string
	pagesDone  int
	pagesTotal int
	startedAt  time.Time
	finishedAt time.Time
}

func NewController(cfg config.Config, engine Recognizer) *Controller {
	return &Controller{
		cfg:    cfg,
		engine: engine,
		ext:    docExtractor{},
		status: StatusIdle,
	}
}

// StartIngestion classifies the upload and, for supported types, runs the
// pipeline in a background worker. Unsupported files are rejected here,
// before any bytes are inspected, and leave the session untouched.
func (c *Controller) StartIngestion(doc UploadedDocument) error {
	route := Classify(doc.MediaType)
	if route == RouteUnsupported {
		slog.Info("rejected upload", "media_type", doc.MediaType)
		return ErrUnsupportedType
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return ErrBusy
	}
	c.running = true
	// Entering Reading invalidates everything from the previous attempt.
	c.status = StatusReading
	c.reason = FailureNone
	c.message = StatusReading.Message()
	c.text = ""
	c.output = ""
	c.pagesDone = 0
	c.pagesTotal = 0
	c.startedAt = time.Now()
	c.finishedAt = time.Time{}
	c.mu.Unlock()

	slog.Info("ingestion started", "route", route.String(), "bytes", len(doc.Data))

	go c.run(doc, route)
	return nil
}

func (c *Controller) run(doc UploadedDocument, route Route) {
	switch route {
	case RoutePDF:
		c.ingestPDF(doc)
	case RouteImage:
		c.ingestImage(doc)
	}
}

func (c *Controller) ingestPDF(doc UploadedDocument) {
	c.setStatus(StatusExtractingPdfText)

	text, pages, err := c.ext.PDFText(doc.Data)
	if err == nil && readable(text) {
		slog.Info("pdf text layer extracted", "pages", pages, "chars", len(text))
		c.succeed(text)
		return
	}
	if err != nil {
		// Malformed or encrypted document. Not terminal: the scan may
		// still be readable as images.
		slog.Warn("pdf parse failed, falling back to OCR",
			"reason", FailurePdfParse.String(), "error", err)
	} else {
		slog.Info("pdf text layer below threshold, falling back to OCR",
			"pages", pages, "chars", utf8.RuneCountInString(strings.TrimSpace(text)))
	}

	c.setStatus(StatusFallingBackToOcr)
	images, err := c.ext.RasterizePDF(doc.Data, c.cfg.Pipeline.RasterScale)
	if err != nil {
		slog.Error("rasterization failed", "error", err)
		c.fail(FailurePdfToImageConversion)
		return
	}

	c.setStatus(StatusRunningOcr)
	c.setPages(0, len(images))
	ocrText, failures := c.engine.RecognizePages(images, c.setPages)
	if failures > 0 {
		slog.Warn("OCR finished with page failures", "failed", failures, "total", len(images))
	}
	if readable(ocrText) {
		c.succeed(ocrText)
		return
	}
	c.fail(FailureNoReadableText)
}

func (c *Controller) ingestImage(doc UploadedDocument) {
	data := doc.Data
	if shrunk, err := c.ext.ShrinkImage(data, c.cfg.Pipeline.MaxImageEdge); err == nil {
		data = shrunk
	} else {
		// OCR can still try the original.
		slog.Warn("image resize failed", "error", err)
	}

	c.setStatus(StatusRunningOcr)
	text, err := c.engine.Recognize(data)
	if err != nil {
		slog.Error("OCR failed", "error", err)
		c.fail(FailureOcrRecognition)
		return
	}
	if readable(text) {
		c.succeed(text)
		return
	}
	c.fail(FailureNoReadableText)
}

// SetManualText is the typed-in path: it bypasses extraction entirely and
// fully replaces the normalized text. Any prior translation output is
// invalidated with it. The gate decides later whether the text is long
// enough.
func (c *Controller) SetManualText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return ErrBusy
	}
	c.status = StatusIdle
	c.reason = FailureNone
	c.message = ""
	c.text = text
	c.output = ""
	c.pagesDone = 0
	c.pagesTotal = 0
	return nil
}

// Text returns the current normalized text.
func (c *Controller) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// SetOutput records the latest translation result.
func (c *Controller) SetOutput(output string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.output = output
}

func (c *Controller) Output() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.output
}

// Reset clears the whole session back to Idle. Not allowed mid-attempt:
// there is no cancellation, the attempt must finish first.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return ErrBusy
	}
	c.status = StatusIdle
	c.reason = FailureNone
	c.message = ""
	c.text = ""
	c.output = ""
	c.pagesDone = 0
	c.pagesTotal = 0
	c.startedAt = time.Time{}
	c.finishedAt = time.Time{}
	return nil
}

// Snapshot reports the session state, including an elapsed-seconds
// counter while an attempt is running. The normalized text appears only
// once the attempt has succeeded.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Status:     c.status,
		Reason:     c.reason,
		ReasonCode: c.reason.String(),
		Message:    c.message,
		PagesDone:  c.pagesDone,
		PagesTotal: c.pagesTotal,
	}
	switch {
	case c.running:
		snap.Seconds = int(time.Since(c.startedAt).Seconds())
	case !c.finishedAt.IsZero():
		snap.Seconds = int(c.finishedAt.Sub(c.startedAt).Seconds())
	}
	if c.status == StatusSucceeded {
		snap.Text = c.text
	}
	return snap
}

func (c *Controller) setStatus(s Status) {
	c.mu.Lock()
	c.status = s
	c.message = s.Message()
	c.mu.Unlock()
}

func (c *Controller) setPages(done, total int) {
	c.mu.Lock()
	c.pagesDone = done
	c.pagesTotal = total
	c.mu.Unlock()
}

func (c *Controller) succeed(text string) {
	c.mu.Lock()
	c.text = text
	c.status = StatusSucceeded
	c.message = StatusSucceeded.Message()
	c.running = false
	c.finishedAt = time.Now()
	c.mu.Unlock()
	slog.Info("ingestion succeeded", "chars", len(text))
}

func (c *Controller) fail(reason FailureReason) {
	c.mu.Lock()
	c.status = StatusFailed
	c.reason = reason
	c.message = reason.Message()
	c.running = false
	c.finishedAt = time.Now()
	c.mu.Unlock()
	slog.Info("ingestion failed", "reason", reason.String())
}
