package extract

import (
	"bytes"
	"fmt"
	"image/png"
	"log/slog"

	fitz "github.com/gen2brain/go-fitz"
)

// mupdfBaseDPI is the resolution MuPDF renders at scale 1.
const mupdfBaseDPI = 72.0

// PageImage is one rasterized PDF page, PNG-encoded for OCR fidelity.
// Pages are ephemeral: they exist only within one ingestion attempt.
type PageImage struct {
	Index  int
	Width  int
	Height int
	PNG    []byte
}

// RasterizePDF renders every page of a PDF to a PNG at the given linear
// scale (2x improves OCR accuracy over native resolution). Individual
// pages that fail to render are skipped; producing zero images is an
// error, since OCR on an empty sequence is meaningless.
func RasterizePDF(data []byte, scale float64) ([]PageImage, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open pdf for rasterization: %w", err)
	}
	defer doc.Close()

	if scale <= 0 {
		scale = 1
	}
	dpi := mupdfBaseDPI * scale

	var pages []PageImage
	numPages := doc.NumPage()
	for i := 0; i < numPages; i++ {
		img, err := doc.ImageDPI(i, dpi)
		if err != nil {
			slog.Warn("page render failed, skipping", "page", i+1, "error", err)
			continue
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			slog.Warn("page encode failed, skipping", "page", i+1, "error", err)
			continue
		}
		b := img.Bounds()
		pages = append(pages, PageImage{
			Index:  i + 1,
			Width:  b.Dx(),
			Height: b.Dy(),
			PNG:    buf.Bytes(),
		})
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("rasterization produced no pages (%d in document)", numPages)
	}
	return pages, nil
}
