package tool

import (
	"context"
	"time"
)

// Repository exposes data access for registered tools.
type Repository interface {
	Create(ctx context.Context, t *Tool) error
	GetByID(ctx context.Context, id string) (*Tool, error)
	List(ctx context.Context, filter ListFilter) ([]Tool, int64, error)
	// UpdateStats overwrites the three running metric columns from a
	// freshly computed Stats value (last write wins under races).
	UpdateStats(ctx context.Context, id string, stats Stats) error
}

// ExecutionRepository persists and counts tool execution records.
type ExecutionRepository interface {
	Create(ctx context.Context, rec *ExecutionRecord) error
	// CountSince counts executions for the (tool, user) pair with
	// ExecutedAt strictly after the given instant.
	CountSince(ctx context.Context, toolID, userID string, since time.Time) (int64, error)
}

// ProjectRepository verifies showcase project ownership during
// registration. Projects themselves are owned by the web application.
type ProjectRepository interface {
	ExistsForCreator(ctx context.Context, projectID, creatorID string) (bool, error)
}

// Invoker performs the outbound HTTP call to a tool's endpoint.
type Invoker interface {
	Invoke(ctx context.Context, endpoint, authMethod string, input map[string]any) (map[string]any, error)
}
