package moderation

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/autopneuma/autopneuma-api/internal/domain/llm"
)

// LogEntry is the pending-review row written when flagged content has
// a known content id.
type LogEntry struct {
	ContentType  string
	ContentID    string
	FlaggedBy    string
	Reason       Recommendation
	Flags        []Flag
	OverallScore float64
	Reasoning    string
	Status       string
}

// LogStore persists pending moderation reviews.
type LogStore interface {
	InsertFlag(ctx context.Context, entry LogEntry) error
}

// Config tunes the moderation service.
type Config struct {
	Enabled   bool
	Model     string
	Threshold float64
}

// Service analyzes content and flags concerns for human moderators.
// It only flags; it never removes or rewrites content.
type Service struct {
	completer  llm.Completer
	logs       LogStore
	aggregator Aggregator
	cfg        Config
	log        zerolog.Logger
}

// NewService wires the moderation service with its collaborators.
func NewService(completer llm.Completer, logs LogStore, cfg Config, log zerolog.Logger) *Service {
	return &Service{
		completer:  completer,
		logs:       logs,
		aggregator: Aggregator{Threshold: cfg.Threshold},
		cfg:        cfg,
		log:        log.With().Str("component", "moderation-service").Logger(),
	}
}

// Moderate analyzes the request content and returns a structurally valid
// result in every case. Classifier failures fail open toward caution: the
// caller receives a flag_for_review result, never an error.
func (s *Service) Moderate(ctx context.Context, req Request) Result {
	if !s.cfg.Enabled {
		return s.disabledResult()
	}

	raw, err := s.completer.Complete(ctx, llm.CompletionRequest{
		Model:        s.cfg.Model,
		SystemPrompt: systemPrompt(req.ContentType),
		UserPrompt:   userPrompt(req.Content, req.ContentType),
		Temperature:  0.3,
	})
	if err != nil {
		s.log.Error().Err(err).Str("content_type", req.ContentType).Msg("classifier call failed")
		return s.errorResult()
	}

	flags, err := s.parseFlags(raw)
	if err != nil {
		s.log.Error().Err(err).Msg("unparseable classifier response")
		return s.errorResult()
	}

	score := s.aggregator.OverallScore(flags)
	recommendation := s.aggregator.Recommend(score, flags)

	result := Result{
		Flagged:        len(flags) > 0,
		Flags:          flags,
		OverallScore:   score,
		Recommendation: recommendation,
		Reasoning:      s.aggregator.Reasoning(flags, score),
		Timestamp:      time.Now().UTC(),
	}

	if result.Flagged && req.ContentID != "" {
		s.logFlagged(ctx, req, result)
	}

	return result
}

func (s *Service) parseFlags(raw string) ([]Flag, error) {
	var payload struct {
		Flags []Flag `json:"flags"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, err
	}
	return s.aggregator.FilterByConfidence(payload.Flags), nil
}

// logFlagged writes the pending review row. Failure here must not fail
// the moderation request; the loss is observability only.
func (s *Service) logFlagged(ctx context.Context, req Request, result Result) {
	entry := LogEntry{
		ContentType:  req.ContentType,
		ContentID:    req.ContentID,
		FlaggedBy:    "ai_assistant",
		Reason:       result.Recommendation,
		Flags:        result.Flags,
		OverallScore: result.OverallScore,
		Reasoning:    result.Reasoning,
		Status:       "pending",
	}
	if err := s.logs.InsertFlag(ctx, entry); err != nil {
		s.log.Error().Err(err).Str("content_id", req.ContentID).Msg("write moderation log")
	}
}

func (s *Service) disabledResult() Result {
	return Result{
		Flagged:        false,
		Flags:          []Flag{},
		OverallScore:   0.0,
		Recommendation: RecommendApprove,
		Reasoning:      "AI moderation is currently disabled. Content approved by default.",
		Timestamp:      time.Now().UTC(),
	}
}

func (s *Service) errorResult() Result {
	return Result{
		Flagged: true,
		Flags: []Flag{
			{
				Category:    "system_error",
				Confidence:  1.0,
				Explanation: "Moderation system encountered an error. Manual review recommended.",
				Severity:    SeverityMedium,
			},
		},
		OverallScore:   0.5,
		Recommendation: RecommendReview,
		Reasoning:      "System error during automated moderation. Please review manually.",
		Timestamp:      time.Now().UTC(),
	}
}
