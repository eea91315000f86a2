package llmclient

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/autopneuma/autopneuma-api/internal/domain/llm"
)

// Client implements llm.Completer on top of the OpenAI chat completions
// API. Responses are requested in JSON mode so callers can parse them
// into typed results.
type Client struct {
	api *openai.Client
}

// NewClient builds the completion client from an API key.
func NewClient(apiKey string) *Client {
	return &Client{api: openai.NewClient(apiKey)}
}

var _ llm.Completer = (*Client)(nil)

// Complete issues a single chat completion and returns the raw content
// of the first choice.
func (c *Client) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: req.Temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
