// Package extract converts uploaded document bytes into plain text:
// PDF text-layer extraction, PDF page rasterization, and Tesseract OCR.
package extract

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFText recovers the embedded text layer of a PDF, page by page in
// document order, with a newline between pages. Word and line spacing
// within a page follows the library's glyph-positioning heuristics.
// Returns the candidate text and the number of pages read.
//
// An error here is not terminal for ingestion: a malformed or encrypted
// document falls through to rasterization + OCR.
func PDFText(data []byte) (text string, pages int, err error) {
	// The parser panics on some malformed documents; treat that as a
	// parse failure like any other.
	defer func() {
		if r := recover(); r != nil {
			text, pages = "", 0
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	fonts := make(map[string]*pdf.Font)
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(fonts)
		if err != nil {
			// A single unreadable page does not spoil the rest.
			slog.Warn("page text extraction failed", "page", i, "error", err)
			continue
		}
		if i > 1 {
			sb.WriteString("\n")
		}
		sb.WriteString(pageText)
	}

	return sb.String(), numPages, nil
}
