package responses

import (
	"time"

	"github.com/autopneuma/autopneuma-api/internal/domain/tool"
)

// ToolResponse is the wire representation of a registered tool,
// including its running performance metrics.
type ToolResponse struct {
	ID                     string         `json:"id"`
	ProjectID              string         `json:"project_id"`
	CreatorID              string         `json:"creator_id"`
	ToolName               string         `json:"tool_name"`
	Description            string         `json:"description"`
	Category               string         `json:"category"`
	APIEndpoint            string         `json:"api_endpoint"`
	AuthenticationMethod   string         `json:"authentication_method"`
	InputSchema            map[string]any `json:"input_schema"`
	OutputSchema           map[string]any `json:"output_schema"`
	RateLimit              int            `json:"rate_limit"`
	RequiresApproval       bool           `json:"requires_approval"`
	SpiritualApplication   string         `json:"spiritual_application"`
	Status                 string         `json:"status"`
	TotalExecutions        int64          `json:"total_executions"`
	SuccessRate            float64        `json:"success_rate"`
	AverageExecutionTimeMS float64        `json:"average_execution_time_ms"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	ApprovedAt             *time.Time     `json:"approved_at,omitempty"`
	ApprovedBy             *string        `json:"approved_by,omitempty"`
}

// NewToolResponse maps a domain tool onto the wire shape.
func NewToolResponse(t *tool.Tool) ToolResponse {
	return ToolResponse{
		ID:                     t.ID,
		ProjectID:              t.ProjectID,
		CreatorID:              t.CreatorID,
		ToolName:               t.ToolName,
		Description:            t.Description,
		Category:               t.Category,
		APIEndpoint:            t.APIEndpoint,
		AuthenticationMethod:   t.AuthenticationMethod,
		InputSchema:            t.InputSchema,
		OutputSchema:           t.OutputSchema,
		RateLimit:              t.RateLimit,
		RequiresApproval:       t.RequiresApproval,
		SpiritualApplication:   t.SpiritualApplication,
		Status:                 string(t.Status),
		TotalExecutions:        t.Stats.TotalExecutions,
		SuccessRate:            t.Stats.SuccessRate,
		AverageExecutionTimeMS: t.Stats.AverageExecutionTimeMS,
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
		ApprovedAt:             t.ApprovedAt,
		ApprovedBy:             t.ApprovedBy,
	}
}

// ToolListResponse is one page of tools.
type ToolListResponse struct {
	Tools   []ToolResponse `json:"tools"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// NewToolListResponse maps a domain list result onto the wire shape.
func NewToolListResponse(result *tool.ListResult) ToolListResponse {
	tools := make([]ToolResponse, 0, len(result.Tools))
	for i := range result.Tools {
		tools = append(tools, NewToolResponse(&result.Tools[i]))
	}
	return ToolListResponse{
		Tools:   tools,
		Total:   result.Total,
		Page:    result.Page,
		PerPage: result.PerPage,
	}
}
