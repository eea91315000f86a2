package tool

import "time"

// Status tracks the lifecycle of a registered community tool.
type Status string

const (
	StatusPendingApproval Status = "pending_approval"
	StatusActive          Status = "active"
	StatusSuspended       Status = "suspended"
	StatusDeprecated      Status = "deprecated"
)

// IsActive reports whether the tool may be executed.
func (s Status) IsActive() bool {
	return s == StatusActive
}

// Tool is a community-contributed AI tool: an externally hosted HTTP
// endpoint registered by a member and invoked on behalf of end users.
type Tool struct {
	ID                   string         `json:"id"`
	ProjectID            string         `json:"project_id"`
	CreatorID            string         `json:"creator_id"`
	ToolName             string         `json:"tool_name"`
	Description          string         `json:"description"`
	Category             string         `json:"category"`
	APIEndpoint          string         `json:"api_endpoint"`
	AuthenticationMethod string         `json:"authentication_method"`
	InputSchema          map[string]any `json:"input_schema"`
	OutputSchema         map[string]any `json:"output_schema"`
	RateLimit            int            `json:"rate_limit"`
	RequiresApproval     bool           `json:"requires_approval"`
	SpiritualApplication string         `json:"spiritual_application"`
	Status               Status         `json:"status"`
	Stats                Stats          `json:"-"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	ApprovedAt           *time.Time     `json:"approved_at,omitempty"`
	ApprovedBy           *string        `json:"approved_by,omitempty"`
}

// Registration is the caller-supplied payload for registering a tool.
type Registration struct {
	ProjectID            string
	ToolName             string
	Description          string
	Category             string
	APIEndpoint          string
	AuthenticationMethod string
	InputSchema          map[string]any
	OutputSchema         map[string]any
	RateLimit            int
	RequiresApproval     bool
	SpiritualApplication string
}

// ExecutionRecord is one row per attempted tool call. Append-only; the
// rate limiter counts these rows per (tool, user) pair.
type ExecutionRecord struct {
	ID              string
	ToolID          string
	UserID          string
	InputData       map[string]any
	OutputData      map[string]any
	ExecutionTimeMS float64
	Success         bool
	ExecutedAt      time.Time
}

// ExecutionResult is returned to the end user after an invocation.
type ExecutionResult struct {
	ToolID          string         `json:"tool_id"`
	Success         bool           `json:"success"`
	OutputData      map[string]any `json:"output_data"`
	ExecutionTimeMS float64        `json:"execution_time_ms"`
	ErrorMessage    string         `json:"error_message,omitempty"`
	Timestamp       time.Time      `json:"timestamp"`

	// Err preserves the failure cause for callers that need to
	// distinguish rejection kinds; it is never serialized.
	Err error `json:"-"`
}

// ListFilter narrows the tool listing.
type ListFilter struct {
	Category string
	Status   Status
	Page     int
	PerPage  int
}

// ListResult is one page of tools plus the unpaginated total.
type ListResult struct {
	Tools   []Tool `json:"tools"`
	Total   int64  `json:"total"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}
