package moderation

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// severityWeights maps severities to their contribution per unit of
// confidence. Unknown severities fall back to 0.5.
var severityWeights = map[Severity]float64{
	SeverityLow:    0.3,
	SeverityMedium: 0.6,
	SeverityHigh:   1.0,
}

const fallbackWeight = 0.5

// Aggregator turns a set of flags into a score and a recommendation.
// Threshold is the configured confidence cutoff; it doubles as the
// review boundary for the overall score.
type Aggregator struct {
	Threshold float64
}

// FilterByConfidence drops flags whose confidence falls below the
// configured threshold. Run before OverallScore.
func (a Aggregator) FilterByConfidence(flags []Flag) []Flag {
	kept := make([]Flag, 0, len(flags))
	for _, f := range flags {
		if f.Confidence >= a.Threshold {
			kept = append(kept, f)
		}
	}
	return kept
}

// OverallScore averages severity-weighted confidences and clamps to [0,1].
//
// This is an unweighted-by-count average of weighted confidences, not a
// probability combination. It is a heuristic carried over deliberately:
// two medium flags do not score higher than one, they score their mean.
func (a Aggregator) OverallScore(flags []Flag) float64 {
	if len(flags) == 0 {
		return 0.0
	}

	var weighted float64
	for _, f := range flags {
		weight, ok := severityWeights[f.Severity]
		if !ok {
			weight = fallbackWeight
		}
		weighted += f.Confidence * weight
	}

	score := weighted / float64(len(flags))
	if score > 1.0 {
		return 1.0
	}
	return score
}

// Recommend decides the moderation outcome. Rules are evaluated in
// order and the first match wins.
func (a Aggregator) Recommend(score float64, flags []Flag) Recommendation {
	if len(flags) == 0 {
		return RecommendApprove
	}

	for _, f := range flags {
		if f.Severity == SeverityHigh {
			return RecommendHighPriority
		}
	}
	if score >= 0.8 {
		return RecommendHighPriority
	}

	if score >= a.Threshold {
		return RecommendReview
	}

	return RecommendApprove
}

// Reasoning renders a human readable summary of the decision for
// moderators.
func (a Aggregator) Reasoning(flags []Flag, score float64) string {
	if len(flags) == 0 {
		return "Content appears appropriate for the community. No concerns identified."
	}

	titler := cases.Title(language.English)

	var b strings.Builder
	b.WriteString("Content flagged for moderator review:\n")
	for _, f := range flags {
		category := titler.String(strings.ReplaceAll(f.Category, "_", " "))
		fmt.Fprintf(&b, "\n- %s (%s severity, %.0f%% confidence): %s",
			category, f.Severity, f.Confidence*100, f.Explanation)
	}

	if score >= 0.8 {
		b.WriteString("\n\nRecommendation: High priority review recommended.")
	} else {
		b.WriteString("\n\nRecommendation: Standard review queue.")
	}

	b.WriteString("\n\nNote: This is an AI assessment to assist human moderators. " +
		"Final decisions should be made by community moderators using wisdom and discernment.")

	return b.String()
}
