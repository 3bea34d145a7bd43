// Package gemini implements the Google-style adapter on the native
// Gemini API. The vendor has no enumerable reasoning field, so thinking
// extraction works by instructing the model to fence its reasoning and
// scanning the returned text with the generic marker scanner.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/promptdeck/llmgate/llm"
	"github.com/promptdeck/llmgate/llm/thinking"
	"github.com/promptdeck/llmgate/transport"
)

// Client implements llm.Provider against the Gemini API.
type Client struct {
	api       *genai.Client
	cfg       *llm.ModelConfig
	extractor thinking.Extractor
	logger    zerolog.Logger
}

var _ llm.Provider = (*Client)(nil)

// New creates a Gemini adapter for the given config.
func New(cfg *llm.ModelConfig, logger zerolog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, llm.NewConfigurationError("model config is missing", "")
	}
	if cfg.APIKey == "" {
		return nil, llm.NewConfigurationError("api key is missing", "api_key")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: transport.NewHTTPClient(),
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = transport.RelayBaseURL(cfg.BaseURL, cfg.Vendor, cfg.UseRelay)
	}

	api, err := genai.NewClient(context.Background(), clientCfg)
	if err != nil {
		return nil, llm.NewVendorAPIError("failed to create client", cfg.Vendor, cfg.DefaultModel, 0, err)
	}

	return &Client{
		api:       api,
		cfg:       cfg,
		extractor: thinking.NewBaseExtractor(),
		logger:    logger,
	}, nil
}

// SendMessage implements llm.Provider.SendMessage.
func (c *Client) SendMessage(ctx context.Context, messages []llm.Message) (string, error) {
	if err := llm.ValidateMessages(messages); err != nil {
		return "", err
	}

	turns, err := buildTurns(messages)
	if err != nil {
		return "", err
	}

	chat, err := c.api.Chats.Create(ctx, c.cfg.DefaultModel, c.generateConfig(turns.system), turns.history)
	if err != nil {
		return "", c.convertError(err)
	}
	resp, err := chat.SendMessage(ctx, genai.Part{Text: turns.prompt})
	if err != nil {
		return "", c.convertError(err)
	}

	text := visibleText(resp)
	if text == "" {
		return "", llm.NewVendorAPIError("empty completion", c.cfg.Vendor, c.cfg.DefaultModel, 0, nil)
	}
	return text, nil
}

// SendMessageWithThinking implements llm.Provider.SendMessageWithThinking.
// The fencing instruction is appended to the outgoing prompt and the
// returned text is split by the generic marker scanner.
func (c *Client) SendMessageWithThinking(ctx context.Context, messages []llm.Message) (*llm.ThinkingResponse, error) {
	if err := llm.ValidateMessages(messages); err != nil {
		return nil, err
	}

	turns, err := buildTurns(messages)
	if err != nil {
		return nil, err
	}
	prompt := turns.prompt + "\n\n" + thinkingInstruction

	chat, err := c.api.Chats.Create(ctx, c.cfg.DefaultModel, c.generateConfig(turns.system), turns.history)
	if err != nil {
		return nil, c.convertError(err)
	}
	resp, err := chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		return nil, c.convertError(err)
	}

	text := visibleText(resp)
	result := c.extractor.Extract(text)
	out := &llm.ThinkingResponse{Content: text}
	if result.HasThinking {
		out.Thinking = result.Thinking
		if result.HasAnswer && result.Answer != "" {
			out.Content = result.Answer
		}
	}
	return out, nil
}

// FetchModels implements llm.Provider.FetchModels.
func (c *Client) FetchModels(ctx context.Context) ([]llm.ModelInfo, error) {
	var models []llm.ModelInfo
	for model, err := range c.api.Models.All(ctx) {
		if err != nil {
			return nil, c.convertError(err)
		}
		models = append(models, llm.ModelInfo{ID: model.Name, Name: model.DisplayName})
	}
	return models, nil
}

// TestConnection implements llm.Provider.TestConnection.
func (c *Client) TestConnection(ctx context.Context) error {
	cfg := &genai.GenerateContentConfig{MaxOutputTokens: 1}
	contents := []*genai.Content{
		{Role: genai.RoleUser, Parts: []*genai.Part{{Text: "hi"}}},
	}
	if _, err := c.api.Models.GenerateContent(ctx, c.cfg.DefaultModel, contents, cfg); err != nil {
		return c.convertError(err)
	}
	return nil
}

// generateConfig assembles the per-call generation config, folding the
// concatenated system messages into the system instruction field.
func (c *Client) generateConfig(system string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if system != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	if c.cfg.Temperature != nil {
		cfg.Temperature = genai.Ptr(float32(*c.cfg.Temperature))
	}
	if c.cfg.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(c.cfg.MaxTokens)
	}
	return cfg
}

// convertError converts genai errors into the llm taxonomy.
func (c *Client) convertError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return llm.NewVendorAPIError(
			fmt.Sprintf("gemini api error: %s", apiErr.Message),
			c.cfg.Vendor, c.cfg.DefaultModel, apiErr.Code, err,
		)
	}
	return llm.NewVendorAPIError("request failed", c.cfg.Vendor, c.cfg.DefaultModel, 0, err)
}
