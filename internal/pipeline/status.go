package pipeline

import (
	"strings"
	"unicode/utf8"
)

// MinTextLen is the shortest trimmed text, in characters, considered
// readable. Extraction succeeds only above it; the submission gate
// accepts at or above it.
const MinTextLen = 10

// readable reports whether extracted text clears the threshold. Counted
// in characters, not bytes: Czech diacritics are multibyte.
func readable(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) > MinTextLen
}

// Status tracks one ingestion attempt. Transitions are strictly forward;
// Succeeded and Failed are terminal until the next attempt resets to Idle.
type Status int

const (
	StatusIdle Status = iota
	StatusReading
	StatusExtractingPdfText
	StatusFallingBackToOcr
	StatusRunningOcr
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusReading:
		return "reading"
	case StatusExtractingPdfText:
		return "extracting_pdf_text"
	case StatusFallingBackToOcr:
		return "falling_back_to_ocr"
	case StatusRunningOcr:
		return "running_ocr"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// MarshalJSON renders the status as its string name for API responses.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Terminal reports whether the attempt is finished.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Message is the user-facing progress text for a status.
func (s Status) Message() string {
	switch s {
	case StatusIdle:
		return ""
	case StatusReading:
		return "Načítáme dokument…"
	case StatusExtractingPdfText:
		return "Čteme text z PDF…"
	case StatusFallingBackToOcr:
		return "PDF neobsahuje textovou vrstvu, převádíme stránky na obrázky…"
	case StatusRunningOcr:
		return "Rozpoznáváme text z obrázku. Může to chvíli trvat…"
	case StatusSucceeded:
		return "Dokument je načtený."
	case StatusFailed:
		return "Dokument se nepodařilo zpracovat."
	}
	return ""
}

// FailureReason distinguishes why an ingestion attempt failed. Each maps
// to its own user-facing message; none of them crashes the daemon.
type FailureReason int

const (
	FailureNone FailureReason = iota
	FailureUnsupportedFileType
	FailurePdfParse
	FailurePdfToImageConversion
	FailureOcrRecognition
	FailureNoReadableText
)

func (r FailureReason) String() string {
	switch r {
	case FailureNone:
		return ""
	case FailureUnsupportedFileType:
		return "unsupported_file_type"
	case FailurePdfParse:
		return "pdf_parse_failure"
	case FailurePdfToImageConversion:
		return "pdf_to_image_conversion_failure"
	case FailureOcrRecognition:
		return "ocr_recognition_failure"
	case FailureNoReadableText:
		return "no_readable_text_found"
	}
	return "unknown"
}

func (r FailureReason) Message() string {
	switch r {
	case FailureUnsupportedFileType:
		return "Tento typ souboru nepodporujeme. Nahrajte prosím PDF nebo obrázek."
	case FailurePdfParse:
		return "PDF se nepodařilo přečíst."
	case FailurePdfToImageConversion:
		return "Dokument se nepodařilo převést na obrázky."
	case FailureOcrRecognition:
		return "Rozpoznávání textu selhalo."
	case FailureNoReadableText:
		return "Nerozpoznali jsme čitelný text."
	}
	return ""
}
