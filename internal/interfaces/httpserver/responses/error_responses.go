package responses

// ErrorResponse wraps a failure reason in a detail field.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Type   string `json:"type,omitempty"`
}
