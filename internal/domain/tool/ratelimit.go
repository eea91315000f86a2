package tool

import (
	"context"
	"fmt"
	"time"
)

// rateLimitWindow is the trailing lookback for per-user, per-tool
// quotas. Continuously sliding; there is no calendar reset boundary.
const rateLimitWindow = time.Hour

// RateLimiter bounds per-user invocations of a tool within the trailing
// window. It holds no in-process state: the population counted is the
// tool_executions table, so the decision survives restarts and is shared
// across replicas.
//
// The count-then-admit sequence is not transactional. Concurrent
// requests from the same user at the quota boundary can admit at most
// one extra request; this drift is accepted rather than hidden behind a
// lock at the storage boundary.
type RateLimiter struct {
	executions ExecutionRepository
	now        func() time.Time
}

// NewRateLimiter builds a limiter over the execution log.
func NewRateLimiter(executions ExecutionRepository) *RateLimiter {
	return &RateLimiter{
		executions: executions,
		now:        time.Now,
	}
}

// Check returns ErrRateLimited when the user already has limit or more
// executions of the tool within the trailing hour.
func (rl *RateLimiter) Check(ctx context.Context, toolID, userID string, limit int) error {
	since := rl.now().Add(-rateLimitWindow)

	count, err := rl.executions.CountSince(ctx, toolID, userID, since)
	if err != nil {
		return fmt.Errorf("count executions: %w", err)
	}

	if count >= int64(limit) {
		return fmt.Errorf("%w: max %d requests per hour", ErrRateLimited, limit)
	}
	return nil
}
