package requests

// RegisterToolRequest is the payload for registering a community tool.
// creator_id is caller supplied until the platform auth token lands.
type RegisterToolRequest struct {
	CreatorID            string         `json:"creator_id" binding:"required"`
	ProjectID            string         `json:"project_id" binding:"required"`
	ToolName             string         `json:"tool_name" binding:"required,min=3,max=100"`
	Description          string         `json:"description" binding:"required,min=20,max=500"`
	Category             string         `json:"category" binding:"required"`
	APIEndpoint          string         `json:"api_endpoint" binding:"required,url"`
	AuthenticationMethod string         `json:"authentication_method"`
	InputSchema          map[string]any `json:"input_schema" binding:"required"`
	OutputSchema         map[string]any `json:"output_schema" binding:"required"`
	RateLimit            *int           `json:"rate_limit"`
	RequiresApproval     *bool          `json:"requires_approval"`
	SpiritualApplication string         `json:"spiritual_application" binding:"required"`
}

// ExecuteToolRequest is the payload for executing a registered tool.
type ExecuteToolRequest struct {
	ToolID    string         `json:"tool_id" binding:"required"`
	InputData map[string]any `json:"input_data" binding:"required"`
	UserID    string         `json:"user_id" binding:"required"`
}
