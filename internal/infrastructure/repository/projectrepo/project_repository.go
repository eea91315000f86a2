package projectrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/autopneuma/autopneuma-api/internal/domain/tool"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/database/entities"
)

// PostgresRepository reads Project Showcase rows owned by the web app.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates the project lookup repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ tool.ProjectRepository = (*PostgresRepository)(nil)

// ExistsForCreator reports whether the project exists and belongs to
// the given creator.
func (r *PostgresRepository) ExistsForCreator(ctx context.Context, projectID, creatorID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Project{}).
		Where("id = ? AND creator_id = ?", projectID, creatorID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check project ownership: %w", err)
	}
	return count > 0, nil
}
