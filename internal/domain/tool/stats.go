package tool

import "math"

// Stats carries the running execution metrics for a tool.
//
// Invariant: SuccessRate is in [0,1] and equals successes/TotalExecutions
// after every update, and AverageExecutionTimeMS is the arithmetic mean of
// all recorded latencies.
type Stats struct {
	TotalExecutions        int64   `json:"total_executions"`
	SuccessRate            float64 `json:"success_rate"`
	AverageExecutionTimeMS float64 `json:"average_execution_time_ms"`
}

// NextStats folds one completed execution into the running totals.
//
// The prior success count is recovered by rounding rate*total, so the
// update only needs the three stored fields, not the full history.
func NextStats(prev Stats, executionTimeMS float64, success bool) Stats {
	successes := int64(math.Round(prev.SuccessRate * float64(prev.TotalExecutions)))
	total := prev.TotalExecutions + 1
	if success {
		successes++
	}

	avg := (prev.AverageExecutionTimeMS*float64(prev.TotalExecutions) + executionTimeMS) / float64(total)

	return Stats{
		TotalExecutions:        total,
		SuccessRate:            float64(successes) / float64(total),
		AverageExecutionTimeMS: avg,
	}
}
