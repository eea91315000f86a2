package toolrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/autopneuma/autopneuma-api/internal/domain/tool"
	"github.com/autopneuma/autopneuma-api/internal/infrastructure/database/entities"
)

// PostgresRepository persists community tools via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ tool.Repository = (*PostgresRepository)(nil)

// Create inserts a newly registered tool.
func (r *PostgresRepository) Create(ctx context.Context, t *tool.Tool) error {
	record, err := toEntity(t)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create community tool: %w", err)
	}
	t.CreatedAt = record.CreatedAt
	t.UpdatedAt = record.UpdatedAt
	return nil
}

// GetByID fetches a tool, mapping missing rows to tool.ErrToolNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*tool.Tool, error) {
	var record entities.CommunityTool
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", tool.ErrToolNotFound, id)
		}
		return nil, fmt.Errorf("fetch community tool: %w", err)
	}
	return toDomain(&record)
}

// List returns one page of tools matching the filter plus the
// unpaginated total.
func (r *PostgresRepository) List(ctx context.Context, filter tool.ListFilter) ([]tool.Tool, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.CommunityTool{}).
		Where("status = ?", string(filter.Status))

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count community tools: %w", err)
	}

	offset := (filter.Page - 1) * filter.PerPage

	var records []entities.CommunityTool
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PerPage).
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list community tools: %w", err)
	}

	tools := make([]tool.Tool, 0, len(records))
	for i := range records {
		t, err := toDomain(&records[i])
		if err != nil {
			return nil, 0, err
		}
		tools = append(tools, *t)
	}
	return tools, total, nil
}

// UpdateStats overwrites the running metric columns.
func (r *PostgresRepository) UpdateStats(ctx context.Context, id string, stats tool.Stats) error {
	err := r.db.WithContext(ctx).
		Model(&entities.CommunityTool{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_executions":          stats.TotalExecutions,
			"success_rate":              stats.SuccessRate,
			"average_execution_time_ms": stats.AverageExecutionTimeMS,
		}).Error
	if err != nil {
		return fmt.Errorf("update tool stats: %w", err)
	}
	return nil
}

func toEntity(t *tool.Tool) (*entities.CommunityTool, error) {
	inputSchema, err := marshalJSON(t.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("encode input schema: %w", err)
	}
	outputSchema, err := marshalJSON(t.OutputSchema)
	if err != nil {
		return nil, fmt.Errorf("encode output schema: %w", err)
	}

	return &entities.CommunityTool{
		ID:                     t.ID,
		ProjectID:              t.ProjectID,
		CreatorID:              t.CreatorID,
		ToolName:               t.ToolName,
		Description:            t.Description,
		Category:               t.Category,
		APIEndpoint:            t.APIEndpoint,
		AuthenticationMethod:   t.AuthenticationMethod,
		InputSchema:            inputSchema,
		OutputSchema:           outputSchema,
		RateLimit:              t.RateLimit,
		RequiresApproval:       t.RequiresApproval,
		SpiritualApplication:   t.SpiritualApplication,
		Status:                 string(t.Status),
		TotalExecutions:        t.Stats.TotalExecutions,
		SuccessRate:            t.Stats.SuccessRate,
		AverageExecutionTimeMS: t.Stats.AverageExecutionTimeMS,
		ApprovedAt:             t.ApprovedAt,
		ApprovedBy:             t.ApprovedBy,
	}, nil
}

func toDomain(record *entities.CommunityTool) (*tool.Tool, error) {
	inputSchema, err := unmarshalJSON(record.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("decode input schema: %w", err)
	}
	outputSchema, err := unmarshalJSON(record.OutputSchema)
	if err != nil {
		return nil, fmt.Errorf("decode output schema: %w", err)
	}

	return &tool.Tool{
		ID:                   record.ID,
		ProjectID:            record.ProjectID,
		CreatorID:            record.CreatorID,
		ToolName:             record.ToolName,
		Description:          record.Description,
		Category:             record.Category,
		APIEndpoint:          record.APIEndpoint,
		AuthenticationMethod: record.AuthenticationMethod,
		InputSchema:          inputSchema,
		OutputSchema:         outputSchema,
		RateLimit:            record.RateLimit,
		RequiresApproval:     record.RequiresApproval,
		SpiritualApplication: record.SpiritualApplication,
		Status:               tool.Status(record.Status),
		Stats: tool.Stats{
			TotalExecutions:        record.TotalExecutions,
			SuccessRate:            record.SuccessRate,
			AverageExecutionTimeMS: record.AverageExecutionTimeMS,
		},
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
		ApprovedAt: record.ApprovedAt,
		ApprovedBy: record.ApprovedBy,
	}, nil
}

func marshalJSON(m map[string]any) (datatypes.JSON, error) {
	if m == nil {
		return datatypes.JSON("{}"), nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func unmarshalJSON(raw datatypes.JSON) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
