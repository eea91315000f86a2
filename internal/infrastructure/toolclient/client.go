package toolclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/autopneuma/autopneuma-api/internal/domain/tool"
)

// Client performs outbound HTTP calls to community tool endpoints.
// Every call is bounded by the configured timeout so one slow tool
// cannot exhaust the handler pool.
type Client struct {
	httpClient *resty.Client
}

// NewClient builds the tool endpoint caller.
func NewClient(timeout time.Duration) *Client {
	client := resty.New().
		SetHeader("User-Agent", "AutoPneuma-API/1.0").
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &Client{httpClient: client}
}

var _ tool.Invoker = (*Client)(nil)

// Invoke POSTs the input payload to the tool endpoint and decodes the
// JSON response body.
//
// TODO: attach credentials for the api_key and oauth authentication
// methods once the credential store lands; until then tools are called
// unauthenticated regardless of authMethod.
func (c *Client) Invoke(ctx context.Context, endpoint, authMethod string, input map[string]any) (map[string]any, error) {
	var output map[string]any

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(input).
		SetResult(&output).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("call tool endpoint: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("tool endpoint error (status %d): %s", resp.StatusCode(), resp.String())
	}

	if output == nil {
		output = map[string]any{}
	}
	return output, nil
}
