package moderation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/autopneuma/autopneuma-api/internal/domain/llm"
	"github.com/autopneuma/autopneuma-api/internal/domain/moderation"
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

type recordingLogStore struct {
	entries []moderation.LogEntry
	err     error
}

func (r *recordingLogStore) InsertFlag(_ context.Context, entry moderation.LogEntry) error {
	r.entries = append(r.entries, entry)
	return r.err
}

func newService(completer llm.Completer, logs moderation.LogStore, enabled bool) *moderation.Service {
	return moderation.NewService(completer, logs, moderation.Config{
		Enabled:   enabled,
		Model:     "gpt-4-turbo-preview",
		Threshold: 0.7,
	}, zerolog.Nop())
}

func TestService_Moderate_Disabled(t *testing.T) {
	svc := newService(&stubCompleter{}, &recordingLogStore{}, false)

	result := svc.Moderate(context.Background(), moderation.Request{Content: "anything"})

	if result.Flagged {
		t.Error("disabled moderation must not flag content")
	}
	if result.Recommendation != moderation.RecommendApprove {
		t.Errorf("Recommendation = %v, want approve", result.Recommendation)
	}
	if result.OverallScore != 0 {
		t.Errorf("OverallScore = %v, want 0", result.OverallScore)
	}
}

func TestService_Moderate_ClassifierError(t *testing.T) {
	svc := newService(&stubCompleter{err: errors.New("upstream timeout")}, &recordingLogStore{}, true)

	result := svc.Moderate(context.Background(), moderation.Request{Content: "some post"})

	if !result.Flagged {
		t.Error("classifier failure must flag for manual review")
	}
	if result.Recommendation != moderation.RecommendReview {
		t.Errorf("Recommendation = %v, want flag_for_review", result.Recommendation)
	}
	if result.OverallScore != 0.5 {
		t.Errorf("OverallScore = %v, want 0.5", result.OverallScore)
	}
	if len(result.Flags) != 1 || result.Flags[0].Category != "system_error" {
		t.Fatalf("Flags = %+v, want one system_error flag", result.Flags)
	}
	if result.Flags[0].Severity != moderation.SeverityMedium || result.Flags[0].Confidence != 1.0 {
		t.Errorf("system_error flag = %+v, want medium severity at full confidence", result.Flags[0])
	}
}

func TestService_Moderate_UnparseableResponse(t *testing.T) {
	svc := newService(&stubCompleter{response: "I cannot answer in JSON"}, &recordingLogStore{}, true)

	result := svc.Moderate(context.Background(), moderation.Request{Content: "some post"})

	if result.Recommendation != moderation.RecommendReview {
		t.Errorf("Recommendation = %v, want flag_for_review", result.Recommendation)
	}
	if len(result.Flags) != 1 || result.Flags[0].Category != "system_error" {
		t.Fatalf("Flags = %+v, want one system_error flag", result.Flags)
	}
}

func TestService_Moderate_CleanContent(t *testing.T) {
	completer := &stubCompleter{response: `{"flags": []}`}
	logs := &recordingLogStore{}
	svc := newService(completer, logs, true)

	result := svc.Moderate(context.Background(), moderation.Request{
		Content:     "Grace and peace to everyone",
		ContentType: "post",
		ContentID:   "post-1",
	})

	if result.Flagged {
		t.Error("clean content must not be flagged")
	}
	if result.Recommendation != moderation.RecommendApprove {
		t.Errorf("Recommendation = %v, want approve", result.Recommendation)
	}
	if len(logs.entries) != 0 {
		t.Errorf("clean content wrote %d log entries, want 0", len(logs.entries))
	}
	if completer.lastReq.Temperature != 0.3 {
		t.Errorf("classifier temperature = %v, want 0.3", completer.lastReq.Temperature)
	}
}

func TestService_Moderate_FlaggedContentIsLogged(t *testing.T) {
	completer := &stubCompleter{
		response: `{"flags": [{"category": "harassment", "confidence": 0.95, "explanation": "targets a member", "severity": "high"}]}`,
	}
	logs := &recordingLogStore{}
	svc := newService(completer, logs, true)

	result := svc.Moderate(context.Background(), moderation.Request{
		Content:     "offensive post",
		ContentType: "comment",
		ContentID:   "comment-9",
		AuthorID:    "user-3",
	})

	if !result.Flagged {
		t.Fatal("high severity flag must mark the result flagged")
	}
	if result.Recommendation != moderation.RecommendHighPriority {
		t.Errorf("Recommendation = %v, want flag_high_priority", result.Recommendation)
	}
	if len(logs.entries) != 1 {
		t.Fatalf("wrote %d log entries, want 1", len(logs.entries))
	}
	entry := logs.entries[0]
	if entry.ContentID != "comment-9" || entry.FlaggedBy != "ai_assistant" || entry.Status != "pending" {
		t.Errorf("log entry = %+v, want pending ai_assistant row for comment-9", entry)
	}
}

func TestService_Moderate_LowConfidenceFlagsDropped(t *testing.T) {
	completer := &stubCompleter{
		response: `{"flags": [{"category": "spam", "confidence": 0.4, "explanation": "maybe promotional", "severity": "low"}]}`,
	}
	svc := newService(completer, &recordingLogStore{}, true)

	result := svc.Moderate(context.Background(), moderation.Request{Content: "check out my site"})

	if result.Flagged {
		t.Error("sub-threshold flags must be dropped before aggregation")
	}
	if len(result.Flags) != 0 {
		t.Errorf("Flags = %+v, want none", result.Flags)
	}
}

func TestService_Moderate_SurvivesLogWriteFailure(t *testing.T) {
	completer := &stubCompleter{
		response: `{"flags": [{"category": "harassment", "confidence": 0.9, "explanation": "hostile", "severity": "medium"}]}`,
	}
	logs := &recordingLogStore{err: errors.New("connection refused")}
	svc := newService(completer, logs, true)

	result := svc.Moderate(context.Background(), moderation.Request{
		Content:   "hostile post",
		ContentID: "post-7",
	})

	if !result.Flagged {
		t.Error("log write failure must not change the moderation outcome")
	}
	if len(logs.entries) != 1 {
		t.Errorf("InsertFlag called %d times, want 1", len(logs.entries))
	}
}

func TestService_Moderate_SkipsLogWithoutContentID(t *testing.T) {
	completer := &stubCompleter{
		response: `{"flags": [{"category": "harassment", "confidence": 0.9, "explanation": "hostile", "severity": "medium"}]}`,
	}
	logs := &recordingLogStore{}
	svc := newService(completer, logs, true)

	svc.Moderate(context.Background(), moderation.Request{Content: "ad-hoc check"})

	if len(logs.entries) != 0 {
		t.Errorf("wrote %d log entries for anonymous content, want 0", len(logs.entries))
	}
}
