// Package completion wraps the OpenAI-compatible chat completions endpoint
// the persona chat pipeline generates replies through.
package completion

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	"titan-server/internal/config"
	"titan-server/internal/utils/httpclients"
	"titan-server/internal/utils/platformerrors"
)

const clientName = "completion"

// Client posts chat completion requests to an OpenAI-compatible provider.
// The zero-key client reports itself unconfigured and is never called by the
// chat pipeline.
type Client struct {
	client       *resty.Client
	baseURL      string
	apiKey       string
	defaultModel string
}

func NewClient(cfg *config.Config) *Client {
	restyClient := httpclients.NewClient(clientName)
	restyClient.SetTimeout(cfg.CompletionTimeout)

	return &Client{
		client:       restyClient,
		baseURL:      normalizeBaseURL(cfg.CompletionBaseURL),
		apiKey:       cfg.CompletionAPIKey,
		defaultModel: cfg.CompletionModel,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// CreateChatCompletion sends a non-streaming completion request. Requests
// without a model get the configured default.
func (c *Client) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionResponse, error) {
	if !c.Configured() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeConfiguration, "completion provider is not configured", nil, "")
	}

	if request.Model == "" {
		request.Model = c.defaultModel
	}

	var respBody openai.ChatCompletionResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", c.apiKey)).
		SetBody(request).
		SetResult(&respBody).
		Post(c.endpoint("/chat/completions"))
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, "completion request failed", err, "")
	}
	if resp.IsError() {
		return nil, c.errorFromResponse(ctx, resp, "completion request failed")
	}
	return &respBody, nil
}

func (c *Client) endpoint(path string) string {
	if c.baseURL == "" {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return c.baseURL + path
	}
	return c.baseURL + "/" + path
}

func (c *Client) errorFromResponse(ctx context.Context, resp *resty.Response, message string) error {
	if resp == nil || resp.RawResponse == nil || resp.RawResponse.Body == nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, message, nil, "")
	}
	defer resp.RawResponse.Body.Close()
	body, err := io.ReadAll(resp.RawResponse.Body)
	if err != nil || len(strings.TrimSpace(string(body))) == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s: status %d", message, resp.StatusCode()), nil, "")
	}
	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, fmt.Sprintf("%s: %s", message, strings.TrimSpace(string(body))), nil, "")
}

func normalizeBaseURL(base string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/")
}
