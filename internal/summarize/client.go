// Package summarize talks to the OpenAI chat-completion API: it turns
// normalized medical text plus a category-specific instruction template
// into a plain-language explanation with a structured section layout.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/JiriTill/lekarprolidi/internal/config"
	"github.com/JiriTill/lekarprolidi/internal/gate"
)

// ErrNoAPIKey means the daemon was started without an OpenAI credential.
var ErrNoAPIKey = errors.New("OPENAI_API_KEY is not set")

// ErrInputTooLong means prompt plus document cannot fit the model
// context. Checked before the network call, so an oversized document
// never burns a request.
var ErrInputTooLong = errors.New("input exceeds model context window")

// Result is one translation answer.
type Result struct {
	Raw      string        `json:"result"`
	Sections []SectionText `json:"sections,omitempty"`
}

// Translator is the summarization collaborator. One outbound request per
// submission, one response, no retries.
type Translator struct {
	client *openai.Client
	cfg    config.OpenAIConfig

	// Section lists are configuration; callers may override before use.
	ReportSections    []Section
	BloodworkSections []Section
}

func New(cfg config.OpenAIConfig) *Translator {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	oc.HTTPClient = &http.Client{
		Timeout: time.Duration(cfg.Timeout * float64(time.Second)),
	}
	return &Translator{
		client:            openai.NewClientWithConfig(oc),
		cfg:               cfg,
		ReportSections:    ReportSections,
		BloodworkSections: BloodworkSections,
	}
}

// Configured reports whether an API key is present.
func (t *Translator) Configured() bool {
	return t.cfg.APIKey != ""
}

func (t *Translator) sectionsFor(category gate.Category) []Section {
	if category == gate.CategoryBloodwork {
		return t.BloodworkSections
	}
	return t.ReportSections
}

// Translate sends one chat completion: the category template as the
// system message and the document text as the user message. Any API
// failure is surfaced once; the caller decides what the user sees.
func (t *Translator) Translate(ctx context.Context, category gate.Category, text string) (Result, error) {
	if !t.Configured() {
		return Result{}, ErrNoAPIKey
	}

	prompt := BuildPrompt(category, t.sectionsFor(category))

	if budget := t.cfg.ContextTokens - t.cfg.MaxTokens; budget > 0 {
		if used := CountTokens(prompt) + CountTokens(text); used > budget {
			slog.Warn("input over token budget", "tokens", used, "budget", budget)
			return Result{}, ErrInputTooLong
		}
	}

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: t.cfg.Temperature,
		MaxTokens:   t.cfg.MaxTokens,
	})
	if err != nil {
		return Result{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, errors.New("empty response from model")
	}

	raw := resp.Choices[0].Message.Content
	return Result{
		Raw:      raw,
		Sections: ParseSections(raw),
	}, nil
}
