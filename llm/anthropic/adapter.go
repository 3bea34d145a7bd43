// Package anthropic implements the Anthropic-style adapter. The vendor's
// chat surface is protocol-compatible with the generic chat-completion
// adapter, so wire-level execution is delegated there; only the model
// catalog differs, because the vendor exposes no listing endpoint.
package anthropic

import (
	"context"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/promptdeck/llmgate/llm"
	"github.com/promptdeck/llmgate/llm/openai"
)

const defaultBaseURL = "https://api.anthropic.com/v1"

// catalogModels is the hard-coded, non-discoverable model catalog. IDs
// come from the vendor SDK's model constants.
var catalogModels = []anthropic.Model{
	anthropic.ModelClaudeSonnet4_5,
	anthropic.ModelClaudeOpus4_1_20250805,
	anthropic.ModelClaudeSonnet4_0,
	anthropic.ModelClaude3_7SonnetLatest,
	anthropic.ModelClaude3_5HaikuLatest,
}

// Client implements llm.Provider by delegating to the generic adapter.
type Client struct {
	inner *openai.Client
	cfg   *llm.ModelConfig
}

var _ llm.Provider = (*Client)(nil)

// New creates an Anthropic adapter for the given config. An empty base
// URL defaults to the vendor's compatible endpoint.
func New(cfg *llm.ModelConfig, logger zerolog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, llm.NewConfigurationError("model config is missing", "")
	}
	if cfg.BaseURL == "" {
		wired := *cfg
		wired.BaseURL = defaultBaseURL
		cfg = &wired
	}

	inner, err := openai.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Client{inner: inner, cfg: cfg}, nil
}

// SendMessage implements llm.Provider.SendMessage.
func (c *Client) SendMessage(ctx context.Context, messages []llm.Message) (string, error) {
	return c.inner.SendMessage(ctx, messages)
}

// SendMessageStream implements llm.Provider.SendMessageStream.
func (c *Client) SendMessageStream(ctx context.Context, messages []llm.Message, handlers llm.StreamHandlers) error {
	return c.inner.SendMessageStream(ctx, messages, handlers)
}

// SendMessageWithThinking implements llm.Provider.SendMessageWithThinking.
func (c *Client) SendMessageWithThinking(ctx context.Context, messages []llm.Message) (*llm.ThinkingResponse, error) {
	return c.inner.SendMessageWithThinking(ctx, messages)
}

// FetchModels implements llm.Provider.FetchModels with the fixed
// catalog. No network call is made.
func (c *Client) FetchModels(_ context.Context) ([]llm.ModelInfo, error) {
	return lo.Map(catalogModels, func(m anthropic.Model, _ int) llm.ModelInfo {
		return llm.ModelInfo{ID: string(m), Name: string(m)}
	}), nil
}

// TestConnection implements llm.Provider.TestConnection.
func (c *Client) TestConnection(ctx context.Context) error {
	return c.inner.TestConnection(ctx)
}
