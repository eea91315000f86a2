package scripture_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/autopneuma/autopneuma-api/internal/domain/llm"
	"github.com/autopneuma/autopneuma-api/internal/domain/scripture"
)

type stubCompleter struct {
	response string
	err      error
	lastReq  llm.CompletionRequest
}

func (s *stubCompleter) Complete(_ context.Context, req llm.CompletionRequest) (string, error) {
	s.lastReq = req
	return s.response, s.err
}

func newAssistant(completer llm.Completer, enabled bool) *scripture.Assistant {
	return scripture.NewAssistant(completer, scripture.Config{
		Enabled:        enabled,
		Model:          "gpt-4-turbo-preview",
		DefaultVersion: "ESV",
	}, zerolog.Nop())
}

func intPtr(v int) *int { return &v }

func TestReference_FormatReference(t *testing.T) {
	tests := []struct {
		name string
		ref  scripture.Reference
		want string
	}{
		{
			name: "single verse",
			ref:  scripture.Reference{Book: "John", Chapter: 3, VerseStart: 16},
			want: "John 3:16",
		},
		{
			name: "verse range",
			ref:  scripture.Reference{Book: "John", Chapter: 3, VerseStart: 16, VerseEnd: intPtr(18)},
			want: "John 3:16-18",
		},
		{
			name: "range collapsing to one verse",
			ref:  scripture.Reference{Book: "Psalm", Chapter: 23, VerseStart: 1, VerseEnd: intPtr(1)},
			want: "Psalm 23:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.FormatReference(); got != tt.want {
				t.Errorf("FormatReference() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatReferenceList(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		got := scripture.FormatReferenceList(nil)
		if got != "No scripture references provided." {
			t.Errorf("FormatReferenceList(nil) = %q", got)
		}
	})

	t.Run("renders reference and version", func(t *testing.T) {
		refs := []scripture.Reference{
			{Book: "Romans", Chapter: 8, VerseStart: 28, Text: "And we know that for those who love God all things work together for good", Version: "ESV"},
		}
		got := scripture.FormatReferenceList(refs)
		if !strings.Contains(got, "**Romans 8:28** (ESV)") {
			t.Errorf("FormatReferenceList() = %q, want bolded citation with version", got)
		}
	})
}

func TestAssistant_GetContext_Disabled(t *testing.T) {
	completer := &stubCompleter{}
	assistant := newAssistant(completer, false)

	resp := assistant.GetContext(context.Background(), scripture.Request{Query: "What does scripture say about forgiveness?"})

	if !strings.Contains(resp.Summary, "disabled") {
		t.Errorf("Summary = %q, want disabled notice", resp.Summary)
	}
	if resp.Query != "What does scripture say about forgiveness?" {
		t.Errorf("Query = %q, want echo of the question", resp.Query)
	}
	if resp.ScriptureReferences == nil || resp.BiblicalPrinciples == nil {
		t.Error("disabled response must use empty slices, not nil")
	}
}

func TestAssistant_GetContext_CompletionError(t *testing.T) {
	assistant := newAssistant(&stubCompleter{err: errors.New("rate limited")}, true)

	resp := assistant.GetContext(context.Background(), scripture.Request{Query: "forgiveness"})

	if !strings.Contains(resp.Summary, "error occurred") {
		t.Errorf("Summary = %q, want error notice", resp.Summary)
	}
	if !strings.Contains(resp.TheologicalInsights, "rate limited") {
		t.Errorf("TheologicalInsights = %q, want underlying error mentioned", resp.TheologicalInsights)
	}
	if len(resp.ScriptureReferences) != 0 {
		t.Errorf("ScriptureReferences = %v, want empty", resp.ScriptureReferences)
	}
}

func TestAssistant_GetContext_ParsesResponse(t *testing.T) {
	completer := &stubCompleter{response: `{
		"summary": "Forgiveness flows from God's forgiveness of us.",
		"biblical_principles": ["Forgive as you have been forgiven"],
		"scripture_references": [
			{"book": "Matthew", "chapter": 6, "verse_start": 14, "text": "For if you forgive others..."},
			{"book": "Colossians", "chapter": 3, "verse_start": 12, "verse_end": 13, "text": "...forgiving each other", "version": "NIV"}
		],
		"theological_insights": "Forgiveness reflects the character of God.",
		"practical_application": "Begin with prayer for the person who wronged you.",
		"further_study": ["The parable of the unmerciful servant"]
	}`}
	assistant := newAssistant(completer, true)

	resp := assistant.GetContext(context.Background(), scripture.Request{Query: "How should I handle being wronged?"})

	if resp.Summary != "Forgiveness flows from God's forgiveness of us." {
		t.Errorf("Summary = %q", resp.Summary)
	}
	if len(resp.ScriptureReferences) != 2 {
		t.Fatalf("got %d references, want 2", len(resp.ScriptureReferences))
	}
	if got := resp.ScriptureReferences[0].Version; got != "ESV" {
		t.Errorf("reference without version should inherit default, got %q", got)
	}
	if got := resp.ScriptureReferences[1].Version; got != "NIV" {
		t.Errorf("explicit reference version must be kept, got %q", got)
	}
	if got := resp.ScriptureReferences[1].FormatReference(); got != "Colossians 3:12-13" {
		t.Errorf("FormatReference() = %q, want Colossians 3:12-13", got)
	}
	if completer.lastReq.Temperature != 0.7 {
		t.Errorf("completion temperature = %v, want 0.7", completer.lastReq.Temperature)
	}
}

func TestAssistant_GetContext_RequestedVersionInPrompt(t *testing.T) {
	completer := &stubCompleter{response: `{"summary": "ok"}`}
	assistant := newAssistant(completer, true)

	assistant.GetContext(context.Background(), scripture.Request{
		Query:        "What is grace?",
		BibleVersion: "KJV",
	})

	if !strings.Contains(completer.lastReq.SystemPrompt, "KJV") {
		t.Errorf("system prompt should carry the requested version, got %q", completer.lastReq.SystemPrompt)
	}
}
