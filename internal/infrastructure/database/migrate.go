package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/autopneuma/autopneuma-api/internal/infrastructure/database/entities"
)

// AutoMigrate applies database schema changes for all persisted aggregates.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.Project{},
		&entities.CommunityTool{},
		&entities.ToolExecution{},
		&entities.ModerationLog{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema migrated")
	return nil
}
