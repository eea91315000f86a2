package entities

import (
	"time"

	"gorm.io/datatypes"
)

// ModerationLog records a flagged piece of content awaiting moderator review.
type ModerationLog struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	ContentType string         `gorm:"size:32;not null"`
	ContentID   string         `gorm:"size:64;not null;index"`
	FlaggedBy   string         `gorm:"size:32;not null"`
	Reason      string         `gorm:"size:64;not null"`
	Details     datatypes.JSON `gorm:"type:jsonb"`
	Status      string         `gorm:"size:32;not null;index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (ModerationLog) TableName() string {
	return "moderation_log"
}
