// Package gateway is the facade the rest of the application consumes.
// Every operation follows the same skeleton: resolve the model config,
// validate it, build the vendor adapter, execute, and wrap failures in
// the shared error taxonomy. No retries happen here; resilience is the
// transport's concern.
package gateway

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/promptdeck/llmgate/llm"
	"github.com/promptdeck/llmgate/llm/factory"
)

// ConfigStore supplies ModelConfig records by key. The gateway never
// writes back to it.
type ConfigStore interface {
	Get(ctx context.Context, key string) (*llm.ModelConfig, error)
}

// ProviderFunc builds an adapter for one config. It exists so tests can
// substitute fake adapters; production callers use the factory.
type ProviderFunc func(cfg *llm.ModelConfig, logger zerolog.Logger) (llm.Provider, error)

// Service executes the five uniform operations against a configured
// vendor. All state is injected; a Service holds nothing request-scoped.
type Service struct {
	store       ConfigStore
	newProvider ProviderFunc
	logger      zerolog.Logger
}

// New creates a Service with explicit dependencies.
func New(store ConfigStore, newProvider ProviderFunc, logger zerolog.Logger) *Service {
	if newProvider == nil {
		newProvider = factory.New
	}
	return &Service{store: store, newProvider: newProvider, logger: logger}
}

// NewDefault creates a Service over the given store with the standard
// factory, for callers that need no substitution.
func NewDefault(store ConfigStore, logger zerolog.Logger) *Service {
	return New(store, factory.New, logger)
}

// SendMessage resolves the named config and returns the complete answer
// text for the conversation.
func (s *Service) SendMessage(ctx context.Context, configKey string, messages []llm.Message) (string, error) {
	provider, err := s.provider(ctx, configKey, llm.ValidationFull)
	if err != nil {
		return "", err
	}
	return provider.SendMessage(ctx, messages)
}

// SendMessageStream resolves the named config and streams the answer
// through handlers. Failures reach both OnError and the returned error.
func (s *Service) SendMessageStream(ctx context.Context, configKey string, messages []llm.Message, handlers llm.StreamHandlers) error {
	provider, err := s.provider(ctx, configKey, llm.ValidationFull)
	if err != nil {
		handlers.Error(err)
		return err
	}
	return provider.SendMessageStream(ctx, messages, handlers)
}

// SendMessageWithThinking resolves the named config and returns the
// answer together with any recovered reasoning trace.
func (s *Service) SendMessageWithThinking(ctx context.Context, configKey string, messages []llm.Message) (*llm.ThinkingResponse, error) {
	provider, err := s.provider(ctx, configKey, llm.ValidationFull)
	if err != nil {
		return nil, err
	}
	return provider.SendMessageWithThinking(ctx, messages)
}

// FetchModels lists the models the configured vendor offers. Listing
// needs no default model, so the config is validated minimally, and a
// vendor failure degrades to an empty list: an empty catalog is a safe
// default for a picker.
func (s *Service) FetchModels(ctx context.Context, configKey string) ([]llm.ModelInfo, error) {
	provider, err := s.provider(ctx, configKey, llm.ValidationMinimal)
	if err != nil {
		return nil, err
	}
	models, err := provider.FetchModels(ctx)
	if err != nil {
		s.logger.Warn().Str("config", configKey).Err(err).Msg("Model listing failed")
		return []llm.ModelInfo{}, nil
	}
	return models, nil
}

// TestConnection verifies the configured endpoint and credential with a
// trivial round trip.
func (s *Service) TestConnection(ctx context.Context, configKey string) error {
	provider, err := s.provider(ctx, configKey, llm.ValidationFull)
	if err != nil {
		return err
	}
	return provider.TestConnection(ctx)
}

// provider runs the shared resolve-validate-construct prefix of every
// operation.
func (s *Service) provider(ctx context.Context, configKey string, level llm.ValidationLevel) (llm.Provider, error) {
	if s.store == nil {
		return nil, llm.NewDependencyError("model configuration store is unavailable", nil)
	}
	cfg, err := s.store.Get(ctx, configKey)
	if err != nil {
		if llm.IsConfigurationError(err) || llm.IsDependencyError(err) {
			return nil, err
		}
		return nil, llm.NewDependencyError("model configuration store failed", err)
	}
	if err := llm.ValidateModelConfig(cfg, level); err != nil {
		return nil, err
	}
	return s.newProvider(cfg, s.logger)
}
