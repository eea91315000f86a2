package entities

import (
	"time"

	"gorm.io/datatypes"
)

// ToolExecution persists one row per attempted community tool invocation.
// The rate limiter counts these rows; they are append-only.
type ToolExecution struct {
	ID              string         `gorm:"type:uuid;primaryKey"`
	ToolID          string         `gorm:"type:uuid;not null;index:idx_tool_executions_tool_user"`
	UserID          string         `gorm:"size:64;not null;index:idx_tool_executions_tool_user"`
	InputData       datatypes.JSON `gorm:"type:jsonb"`
	OutputData      datatypes.JSON `gorm:"type:jsonb"`
	ExecutionTimeMS float64        `gorm:"not null"`
	Success         bool           `gorm:"not null"`
	ExecutedAt      time.Time      `gorm:"not null;index;autoCreateTime"`
}

func (ToolExecution) TableName() string {
	return "tool_executions"
}
