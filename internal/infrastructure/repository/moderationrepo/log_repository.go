package moderationrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/autopneuma/autopneuma-api/internal/domain/moderation"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/database/entities"
)

// LogPostgresRepository persists pending moderation reviews.
type LogPostgresRepository struct {
	db *gorm.DB
}

// NewLogPostgresRepository creates the moderation log repository.
func NewLogPostgresRepository(db *gorm.DB) *LogPostgresRepository {
	return &LogPostgresRepository{db: db}
}

var _ moderation.LogStore = (*LogPostgresRepository)(nil)

// InsertFlag writes one pending review row.
func (r *LogPostgresRepository) InsertFlag(ctx context.Context, entry moderation.LogEntry) error {
	details, err := json.Marshal(map[string]any{
		"flags":         entry.Flags,
		"overall_score": entry.OverallScore,
		"reasoning":     entry.Reasoning,
	})
	if err != nil {
		return fmt.Errorf("encode moderation details: %w", err)
	}

	record := entities.ModerationLog{
		ID:          uuid.NewString(),
		ContentType: entry.ContentType,
		ContentID:   entry.ContentID,
		FlaggedBy:   entry.FlaggedBy,
		Reason:      string(entry.Reason),
		Details:     datatypes.JSON(details),
		Status:      entry.Status,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("create moderation log: %w", err)
	}
	return nil
}
