package tool

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service manages the community tool registry and orchestrates
// invocations of registered tools.
type Service struct {
	tools      Repository
	executions ExecutionRepository
	projects   ProjectRepository
	invoker    Invoker
	limiter    *RateLimiter
	log        zerolog.Logger
	now        func() time.Time
}

// NewService wires the community tools service.
func NewService(
	tools Repository,
	executions ExecutionRepository,
	projects ProjectRepository,
	invoker Invoker,
	log zerolog.Logger,
) *Service {
	return &Service{
		tools:      tools,
		executions: executions,
		projects:   projects,
		invoker:    invoker,
		limiter:    NewRateLimiter(executions),
		log:        log.With().Str("component", "tool-service").Logger(),
		now:        time.Now,
	}
}

// Register validates project ownership and creates the tool. Tools that
// require approval start in pending_approval, otherwise active.
func (s *Service) Register(ctx context.Context, reg Registration, creatorID string) (*Tool, error) {
	owned, err := s.projects.ExistsForCreator(ctx, reg.ProjectID, creatorID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrProjectNotFound
	}

	status := StatusActive
	if reg.RequiresApproval {
		status = StatusPendingApproval
	}

	t := &Tool{
		ID:                   uuid.NewString(),
		ProjectID:            reg.ProjectID,
		CreatorID:            creatorID,
		ToolName:             reg.ToolName,
		Description:          reg.Description,
		Category:             reg.Category,
		APIEndpoint:          reg.APIEndpoint,
		AuthenticationMethod: reg.AuthenticationMethod,
		InputSchema:          reg.InputSchema,
		OutputSchema:         reg.OutputSchema,
		RateLimit:            reg.RateLimit,
		RequiresApproval:     reg.RequiresApproval,
		SpiritualApplication: reg.SpiritualApplication,
		Status:               status,
		Stats: Stats{
			TotalExecutions:        0,
			SuccessRate:            1.0,
			AverageExecutionTimeMS: 0,
		},
	}

	if err := s.tools.Create(ctx, t); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tool_id", t.ID).
		Str("creator_id", creatorID).
		Str("status", string(t.Status)).
		Msg("registered community tool")

	return t, nil
}

// Execute runs a registered tool on behalf of a user. It never returns
// an error: every failure along the way is captured into the result's
// error message, and a failed execution is still folded into the tool's
// metrics with a best-effort tool id.
func (s *Service) Execute(ctx context.Context, toolID, userID string, input map[string]any) ExecutionResult {
	start := s.now()

	t, err := s.lookupActive(ctx, toolID, userID)
	if err != nil {
		return s.failResult(ctx, toolID, start, err)
	}

	output, err := s.invoker.Invoke(ctx, t.APIEndpoint, t.AuthenticationMethod, input)
	if err != nil {
		s.log.Warn().Err(err).Str("tool_id", t.ID).Msg("tool endpoint call failed")
		return s.failResult(ctx, t.ID, start, err)
	}

	elapsed := s.elapsedMS(start)
	s.recordStats(ctx, t.ID, elapsed, true)
	s.logExecution(ctx, t.ID, userID, input, output, elapsed)

	return ExecutionResult{
		ToolID:          t.ID,
		Success:         true,
		OutputData:      output,
		ExecutionTimeMS: elapsed,
		Timestamp:       s.now().UTC(),
	}
}

func (s *Service) lookupActive(ctx context.Context, toolID, userID string) (*Tool, error) {
	t, err := s.tools.GetByID(ctx, toolID)
	if err != nil {
		return nil, err
	}
	if !t.Status.IsActive() {
		return nil, ErrToolNotActive
	}
	if err := s.limiter.Check(ctx, t.ID, userID, t.RateLimit); err != nil {
		return nil, err
	}
	return t, nil
}

// Get fetches a tool by id.
func (s *Service) Get(ctx context.Context, id string) (*Tool, error) {
	return s.tools.GetByID(ctx, id)
}

// List returns one page of tools. Status defaults to active; per_page is
// clamped to [1,100].
func (s *Service) List(ctx context.Context, filter ListFilter) (*ListResult, error) {
	if filter.Status == "" {
		filter.Status = StatusActive
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = 20
	}
	if filter.PerPage > 100 {
		filter.PerPage = 100
	}

	tools, total, err := s.tools.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Tools:   tools,
		Total:   total,
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}, nil
}

func (s *Service) failResult(ctx context.Context, toolID string, start time.Time, cause error) ExecutionResult {
	elapsed := s.elapsedMS(start)
	s.recordStats(ctx, toolID, elapsed, false)

	return ExecutionResult{
		ToolID:          toolID,
		Success:         false,
		OutputData:      map[string]any{},
		ExecutionTimeMS: elapsed,
		ErrorMessage:    cause.Error(),
		Timestamp:       s.now().UTC(),
		Err:             cause,
	}
}

// recordStats folds one completed attempt into the tool's running
// metrics. The read-compute-write sequence runs without a transaction;
// under concurrent updates one attempt can be lost (last write wins).
// Write failures are swallowed: the execution result still reaches the
// end user, only the analytics update is lost.
func (s *Service) recordStats(ctx context.Context, toolID string, executionTimeMS float64, success bool) {
	t, err := s.tools.GetByID(ctx, toolID)
	if err != nil {
		s.log.Warn().Err(err).Str("tool_id", toolID).Msg("skip stats update, tool lookup failed")
		return
	}

	next := NextStats(t.Stats, executionTimeMS, success)
	if err := s.tools.UpdateStats(ctx, toolID, next); err != nil {
		s.log.Error().Err(err).Str("tool_id", toolID).Msg("update tool stats")
	}
}

// logExecution appends the analytics row successful invocations produce.
// The row also feeds the rate limiter. Insert failures are swallowed.
func (s *Service) logExecution(ctx context.Context, toolID, userID string, input, output map[string]any, elapsedMS float64) {
	rec := &ExecutionRecord{
		ID:              uuid.NewString(),
		ToolID:          toolID,
		UserID:          userID,
		InputData:       input,
		OutputData:      output,
		ExecutionTimeMS: elapsedMS,
		Success:         true,
		ExecutedAt:      s.now().UTC(),
	}
	if err := s.executions.Create(ctx, rec); err != nil {
		s.log.Error().Err(err).Str("tool_id", toolID).Msg("log tool execution")
	}
}

func (s *Service) elapsedMS(start time.Time) float64 {
	return float64(s.now().Sub(start)) / float64(time.Millisecond)
}
