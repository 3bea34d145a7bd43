// Package openai implements the generic chat-completion adapter. It
// serves the OpenAI API itself and every wire-compatible vendor
// (DeepSeek-style endpoints, locally-hosted servers, relay deployments);
// the factory routes unknown vendors here on the assumption that most
// REST LLM vendors speak this protocol.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"

	"github.com/promptdeck/llmgate/llm"
	"github.com/promptdeck/llmgate/llm/thinking"
	"github.com/promptdeck/llmgate/transport"
)

// Client implements llm.Provider against any chat-completion endpoint.
type Client struct {
	api    *openai.Client
	cfg    *llm.ModelConfig
	helper *thinking.Helper
	logger zerolog.Logger
}

var _ llm.Provider = (*Client)(nil)

// New creates a generic chat-completion adapter for the given config.
// The config's relay flag reroutes the base URL through the same-origin
// relay when the runtime provides one.
func New(cfg *llm.ModelConfig, logger zerolog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, llm.NewConfigurationError("model config is missing", "")
	}
	if cfg.APIKey == "" {
		return nil, llm.NewConfigurationError("api key is missing", "api_key")
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = transport.RelayBaseURL(cfg.BaseURL, cfg.Vendor, cfg.UseRelay)
	}
	apiCfg.HTTPClient = transport.NewHTTPClient()

	return &Client{
		api:    openai.NewClientWithConfig(apiCfg),
		cfg:    cfg,
		helper: thinking.NewHelper(thinking.NewDeepSeekExtractor(), logger),
		logger: logger,
	}, nil
}

// SendMessage implements llm.Provider.SendMessage.
func (c *Client) SendMessage(ctx context.Context, messages []llm.Message) (string, error) {
	if err := llm.ValidateMessages(messages); err != nil {
		return "", err
	}

	req := c.buildRequest(messages)
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", c.convertError(err)
	}

	text, err := c.completionText(resp)
	if err != nil {
		return "", err
	}
	c.logUsage(resp.Usage)
	return text, nil
}

// SendMessageWithThinking implements llm.Provider.SendMessageWithThinking.
// For models that support function calling a show_reasoning tool is
// attached; reasoner-tuned models instead get a fenced-block instruction,
// and their native reasoning field is preferred over text parsing.
func (c *Client) SendMessageWithThinking(ctx context.Context, messages []llm.Message) (*llm.ThinkingResponse, error) {
	if err := llm.ValidateMessages(messages); err != nil {
		return nil, err
	}

	req := c.buildRequest(messages)
	model := req.Model

	switch {
	case isReasonerModel(model):
		req.Messages = append([]openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleSystem,
			Content: reasonerInstruction,
		}}, req.Messages...)
	case supportsFunctionCalling(c.cfg.Vendor, model):
		req.Tools = []openai.Tool{thinkingToolDefinition()}
		req.ToolChoice = "auto"
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, c.convertError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, llm.NewVendorAPIError("no choices in response", c.cfg.Vendor, model, 0, nil)
	}

	raw := rawResponse(resp.Choices[0].Message)
	thinkingText, content := c.helper.Extract(raw)
	c.logUsage(resp.Usage)

	return &llm.ThinkingResponse{Thinking: thinkingText, Content: content}, nil
}

// FetchModels implements llm.Provider.FetchModels.
func (c *Client) FetchModels(ctx context.Context) ([]llm.ModelInfo, error) {
	list, err := c.api.ListModels(ctx)
	if err != nil {
		return nil, c.convertError(err)
	}
	return lo.Map(list.Models, func(m openai.Model, _ int) llm.ModelInfo {
		return llm.ModelInfo{ID: m.ID, Name: m.ID}
	}), nil
}

// TestConnection implements llm.Provider.TestConnection as a one-token
// round trip.
func (c *Client) TestConnection(ctx context.Context) error {
	req := openai.ChatCompletionRequest{
		Model: c.cfg.DefaultModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "hi"},
		},
		MaxTokens: 1,
	}
	if _, err := c.api.CreateChatCompletion(ctx, req); err != nil {
		return c.convertError(err)
	}
	return nil
}

// buildRequest assembles the vendor payload from a conversation and the
// config's generation parameters.
func (c *Client) buildRequest(messages []llm.Message) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model:    c.cfg.DefaultModel,
		Messages: toChatMessages(messages),
	}
	if c.cfg.MaxTokens > 0 {
		req.MaxTokens = int(c.cfg.MaxTokens)
	}
	if c.cfg.Temperature != nil {
		req.Temperature = float32(*c.cfg.Temperature)
	}
	return req
}

// completionText extracts the answer text, refusing to return an empty
// success.
func (c *Client) completionText(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", llm.NewVendorAPIError("no choices in response", c.cfg.Vendor, c.cfg.DefaultModel, 0, nil)
	}
	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", llm.NewVendorAPIError("empty completion", c.cfg.Vendor, c.cfg.DefaultModel, 0, nil)
	}
	return text, nil
}

func (c *Client) logUsage(usage openai.Usage) {
	if usage.TotalTokens == 0 {
		return
	}
	c.logger.Debug().
		Str("vendor", c.cfg.Vendor).
		Str("model", c.cfg.DefaultModel).
		Int("prompt_tokens", usage.PromptTokens).
		Int("completion_tokens", usage.CompletionTokens).
		Msg("Chat completion usage")
}

// convertError converts vendor SDK errors into the llm taxonomy.
func (c *Client) convertError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return llm.NewVendorAPIError(
				fmt.Sprintf("request failed: %v", reqErr.Err),
				c.cfg.Vendor, c.cfg.DefaultModel, reqErr.HTTPStatusCode, err,
			)
		}
		// Network or decode failure outside the vendor's error shape.
		return llm.NewVendorAPIError("request failed", c.cfg.Vendor, c.cfg.DefaultModel, 0, err)
	}

	msg := apiErr.Message
	switch apiErr.HTTPStatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		msg = fmt.Sprintf("authentication failed: %s", apiErr.Message)
	case http.StatusTooManyRequests:
		msg = fmt.Sprintf("rate limited: %s", apiErr.Message)
	}
	return llm.NewVendorAPIError(msg, c.cfg.Vendor, c.cfg.DefaultModel, apiErr.HTTPStatusCode, err)
}
