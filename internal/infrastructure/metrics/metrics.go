package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Auto Pneuma API metrics
var (
	ModerationRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autopneuma",
			Subsystem: "api",
			Name:      "moderation_requests_total",
			Help:      "Total moderation requests by recommendation outcome",
		},
		[]string{"recommendation"},
	)

	ModerationFlagsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autopneuma",
			Subsystem: "api",
			Name:      "moderation_flags_total",
			Help:      "Total moderation flags raised by severity",
		},
		[]string{"severity"},
	)

	ScriptureRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "autopneuma",
			Subsystem: "api",
			Name:      "scripture_requests_total",
			Help:      "Total scripture context requests",
		},
	)

	ToolExecutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autopneuma",
			Subsystem: "api",
			Name:      "tool_executions_total",
			Help:      "Total community tool executions by outcome",
		},
		[]string{"status"},
	)

	ToolExecutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "autopneuma",
			Subsystem: "api",
			Name:      "tool_execution_duration_seconds",
			Help:      "Latency of outbound community tool calls",
			Buckets:   prometheus.DefBuckets,
		},
	)

	RateLimitRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "autopneuma",
			Subsystem: "api",
			Name:      "rate_limit_rejections_total",
			Help:      "Total tool executions rejected by the hourly rate limit",
		},
	)
)
