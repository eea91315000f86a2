package toolrepo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/autopneuma/autopneuma-api/internal/domain/tool"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/database/entities"
)

// ExecutionPostgresRepository persists the append-only execution log.
type ExecutionPostgresRepository struct {
	db *gorm.DB
}

// NewExecutionPostgresRepository creates the execution log repository.
func NewExecutionPostgresRepository(db *gorm.DB) *ExecutionPostgresRepository {
	return &ExecutionPostgresRepository{db: db}
}

var _ tool.ExecutionRepository = (*ExecutionPostgresRepository)(nil)

// Create appends one execution record.
func (r *ExecutionPostgresRepository) Create(ctx context.Context, rec *tool.ExecutionRecord) error {
	input, err := marshalJSON(rec.InputData)
	if err != nil {
		return fmt.Errorf("encode input data: %w", err)
	}
	output, err := marshalJSON(rec.OutputData)
	if err != nil {
		return fmt.Errorf("encode output data: %w", err)
	}

	record := entities.ToolExecution{
		ID:              rec.ID,
		ToolID:          rec.ToolID,
		UserID:          rec.UserID,
		InputData:       input,
		OutputData:      output,
		ExecutionTimeMS: rec.ExecutionTimeMS,
		Success:         rec.Success,
		ExecutedAt:      rec.ExecutedAt,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("create tool execution: %w", err)
	}
	return nil
}

// CountSince counts executions for the (tool, user) pair inside the
// trailing window.
func (r *ExecutionPostgresRepository) CountSince(ctx context.Context, toolID, userID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.ToolExecution{}).
		Where("tool_id = ? AND user_id = ? AND executed_at > ?", toolID, userID, since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count tool executions: %w", err)
	}
	return count, nil
}
