// Package gate validates the session state before any text is allowed
// out to the summarization API. It is a pure predicate: no I/O, no
// mutation, and a gate failure never reaches the network.
package gate

import (
	"strings"
	"unicode/utf8"

	"github.com/JiriTill/lekarprolidi/internal/pipeline"
)

// Category is the document kind the user selected. The prompt template
// depends on it, so translation is refused until one is chosen.
type Category int

const (
	CategoryUnselected Category = iota
	CategoryReport
	CategoryBloodwork
)

func (c Category) String() string {
	switch c {
	case CategoryReport:
		return "zprava"
	case CategoryBloodwork:
		return "rozbor"
	}
	return ""
}

// ParseCategory maps the wire value to a Category. Unknown values are
// Unselected, which the gate then rejects.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zprava", "report":
		return CategoryReport
	case "rozbor", "bloodwork":
		return CategoryBloodwork
	}
	return CategoryUnselected
}

// Reason says which precondition blocked submission. ReasonNone means the
// gate is open.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNoCategory
	ReasonNoText
	ReasonNoConsent
	ReasonTextTooShort
)

func (r Reason) String() string {
	switch r {
	case ReasonNoCategory:
		return "no_category"
	case ReasonNoText:
		return "no_text"
	case ReasonNoConsent:
		return "consent_missing"
	case ReasonTextTooShort:
		return "text_too_short"
	}
	return ""
}

func (r Reason) Message() string {
	switch r {
	case ReasonNoCategory:
		return "Vyberte, co chcete přeložit (zpráva nebo rozbor)."
	case ReasonNoText:
		return "Nezadali jste žádný text ani nenahráli dokument."
	case ReasonNoConsent:
		return "Potvrďte prosím oba souhlasy."
	case ReasonTextTooShort:
		return "Text je příliš krátký."
	}
	return ""
}

// State aggregates everything the gate checks.
type State struct {
	Category      Category
	ConsentAdvice bool
	ConsentGDPR   bool
	Text          string
}

// Check evaluates the preconditions in fixed precedence order: category
// first, then presence of text, then consent, then length. The first
// unmet one wins, so the user always sees a single specific reason.
func (s State) Check() Reason {
	if s.Category == CategoryUnselected {
		return ReasonNoCategory
	}
	trimmed := strings.TrimSpace(s.Text)
	if trimmed == "" {
		return ReasonNoText
	}
	if !s.ConsentAdvice || !s.ConsentGDPR {
		return ReasonNoConsent
	}
	// Counted in characters, not bytes: Czech diacritics are multibyte.
	if utf8.RuneCountInString(trimmed) < pipeline.MinTextLen {
		return ReasonTextTooShort
	}
	return ReasonNone
}
