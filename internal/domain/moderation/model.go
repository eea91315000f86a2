package moderation

import "time"

// Severity classifies how serious a single moderation concern is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Recommendation is the categorical moderation outcome.
type Recommendation string

const (
	RecommendApprove      Recommendation = "approve"
	RecommendReview       Recommendation = "flag_for_review"
	RecommendHighPriority Recommendation = "flag_high_priority"
)

// Flag is a single concern identified about a piece of content.
type Flag struct {
	Category    string   `json:"category"`
	Confidence  float64  `json:"confidence"`
	Explanation string   `json:"explanation"`
	Severity    Severity `json:"severity"`
}

// Result is the aggregated moderation outcome returned to callers.
type Result struct {
	Flagged        bool           `json:"flagged"`
	Flags          []Flag         `json:"flags"`
	OverallScore   float64        `json:"overall_score"`
	Recommendation Recommendation `json:"recommendation"`
	Reasoning      string         `json:"reasoning"`
	Timestamp      time.Time      `json:"timestamp"`
}

// Request carries the content to be analyzed.
type Request struct {
	Content     string
	ContentType string
	ContentID   string
	AuthorID    string
}
