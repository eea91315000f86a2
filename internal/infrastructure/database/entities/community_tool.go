package entities

import (
	"time"

	"gorm.io/datatypes"
)

// CommunityTool models the persisted representation of a registered community AI tool.
type CommunityTool struct {
	ID                     string         `gorm:"type:uuid;primaryKey"`
	ProjectID              string         `gorm:"type:uuid;not null;index"`
	CreatorID              string         `gorm:"size:64;not null;index"`
	ToolName               string         `gorm:"size:100;not null"`
	Description            string         `gorm:"type:text;not null"`
	Category               string         `gorm:"size:50;not null;index"`
	APIEndpoint            string         `gorm:"size:2048;not null"`
	AuthenticationMethod   string         `gorm:"size:32;not null;default:'api_key'"`
	InputSchema            datatypes.JSON `gorm:"type:jsonb"`
	OutputSchema           datatypes.JSON `gorm:"type:jsonb"`
	RateLimit              int            `gorm:"not null;default:100"`
	RequiresApproval       bool           `gorm:"not null;default:true"`
	SpiritualApplication   string         `gorm:"type:text;not null"`
	Status                 string         `gorm:"size:32;not null;index"`
	TotalExecutions        int64          `gorm:"not null;default:0"`
	SuccessRate            float64        `gorm:"not null;default:1.0"`
	AverageExecutionTimeMS float64        `gorm:"not null;default:0"`
	CreatedAt              time.Time      `gorm:"autoCreateTime"`
	UpdatedAt              time.Time      `gorm:"autoUpdateTime"`
	ApprovedAt             *time.Time
	ApprovedBy             *string `gorm:"size:64"`
}

func (CommunityTool) TableName() string {
	return "community_tools"
}
