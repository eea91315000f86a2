package scripture

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/autopneuma/autopneuma-api/internal/domain/llm"
)

// Config tunes the scripture context assistant.
type Config struct {
	Enabled        bool
	Model          string
	DefaultVersion string
}

// Assistant provides biblical insights and references for community
// questions. Failures produce a safe fallback payload, never an error.
type Assistant struct {
	completer llm.Completer
	cfg       Config
	log       zerolog.Logger
}

// NewAssistant wires the assistant with its completion client.
func NewAssistant(completer llm.Completer, cfg Config, log zerolog.Logger) *Assistant {
	return &Assistant{
		completer: completer,
		cfg:       cfg,
		log:       log.With().Str("component", "scripture-assistant").Logger(),
	}
}

// GetContext answers the query with scripture references and guidance.
func (a *Assistant) GetContext(ctx context.Context, req Request) Response {
	if !a.cfg.Enabled {
		return a.disabledResponse(req.Query)
	}

	version := req.BibleVersion
	if version == "" {
		version = a.cfg.DefaultVersion
	}

	raw, err := a.completer.Complete(ctx, llm.CompletionRequest{
		Model:        a.cfg.Model,
		SystemPrompt: systemPrompt(version),
		UserPrompt:   buildUserPrompt(req),
		Temperature:  0.7,
	})
	if err != nil {
		a.log.Error().Err(err).Msg("scripture completion failed")
		return a.errorResponse(req.Query, err)
	}

	resp, err := a.parseResponse(raw, req.Query, version)
	if err != nil {
		a.log.Error().Err(err).Msg("unparseable scripture response")
		return a.errorResponse(req.Query, err)
	}
	return resp
}

func (a *Assistant) parseResponse(raw, query, version string) (Response, error) {
	var payload struct {
		Summary             string   `json:"summary"`
		BiblicalPrinciples  []string `json:"biblical_principles"`
		ScriptureReferences []struct {
			Book       string `json:"book"`
			Chapter    int    `json:"chapter"`
			VerseStart int    `json:"verse_start"`
			VerseEnd   *int   `json:"verse_end"`
			Text       string `json:"text"`
			Version    string `json:"version"`
		} `json:"scripture_references"`
		TheologicalInsights  string   `json:"theological_insights"`
		PracticalApplication string   `json:"practical_application"`
		FurtherStudy         []string `json:"further_study"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return Response{}, err
	}

	refs := make([]Reference, 0, len(payload.ScriptureReferences))
	for _, r := range payload.ScriptureReferences {
		refVersion := r.Version
		if refVersion == "" {
			refVersion = version
		}
		refs = append(refs, Reference{
			Book:       r.Book,
			Chapter:    r.Chapter,
			VerseStart: r.VerseStart,
			VerseEnd:   r.VerseEnd,
			Text:       r.Text,
			Version:    refVersion,
		})
	}

	return Response{
		Query:                query,
		Summary:              payload.Summary,
		BiblicalPrinciples:   orEmpty(payload.BiblicalPrinciples),
		ScriptureReferences:  refs,
		TheologicalInsights:  payload.TheologicalInsights,
		PracticalApplication: payload.PracticalApplication,
		FurtherStudy:         orEmpty(payload.FurtherStudy),
		Timestamp:            time.Now().UTC(),
	}, nil
}

func (a *Assistant) disabledResponse(query string) Response {
	return Response{
		Query:                query,
		Summary:              "Scripture Context Assistant is currently disabled.",
		BiblicalPrinciples:   []string{},
		ScriptureReferences:  []Reference{},
		TheologicalInsights:  "The Scripture Context Assistant feature is currently disabled. Please check back later.",
		PracticalApplication: "",
		FurtherStudy:         []string{},
		Timestamp:            time.Now().UTC(),
	}
}

func (a *Assistant) errorResponse(query string, err error) Response {
	return Response{
		Query:   query,
		Summary: "An error occurred while processing your request.",
		BiblicalPrinciples:  []string{},
		ScriptureReferences: []Reference{},
		TheologicalInsights: fmt.Sprintf(
			"We encountered an error while generating biblical insights: %v. Please try again or contact support if the issue persists.", err),
		PracticalApplication: "",
		FurtherStudy:         []string{},
		Timestamp:            time.Now().UTC(),
	}
}

// FormatReferenceList renders references for display in markdown.
func FormatReferenceList(refs []Reference) string {
	if len(refs) == 0 {
		return "No scripture references provided."
	}

	parts := make([]string, 0, len(refs))
	for _, r := range refs {
		parts = append(parts, fmt.Sprintf("**%s** (%s)\n%q", r.FormatReference(), r.Version, r.Text))
	}
	return strings.Join(parts, "\n\n")
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
