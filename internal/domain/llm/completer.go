package llm

import "context"

// CompletionRequest describes a single structured completion call.
// Handlers always request JSON output so responses can be parsed
// into typed results.
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
}

// Completer is the narrow surface the domain services need from the
// hosted language model provider.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
