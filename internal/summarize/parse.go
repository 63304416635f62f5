package summarize

import "strings"

// SectionText is one parsed section of the model's answer.
type SectionText struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ParseSections splits a response on the "## <title>" headings the prompt
// asked for. Text before the first heading (or an answer with no headings
// at all, when the model ignores the format) becomes a single untitled
// section, so no output is ever dropped.
func ParseSections(raw string) []SectionText {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var sections []SectionText
	current := SectionText{}
	var body strings.Builder

	flush := func() {
		text := strings.TrimSpace(body.String())
		if current.Title != "" || text != "" {
			current.Body = text
			sections = append(sections, current)
		}
		body.Reset()
	}

	for _, line := range strings.Split(raw, "\n") {
		if title, ok := strings.CutPrefix(strings.TrimSpace(line), "## "); ok {
			flush()
			current = SectionText{Title: strings.TrimSpace(title)}
			continue
		}
		body.WriteString(line)
		body.WriteString("\n")
	}
	flush()

	return sections
}
