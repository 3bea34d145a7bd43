package llm

import (
	"context"
)

// Provider is the uniform contract every vendor adapter implements.
// Implementations make at most one outbound HTTP call per method (one
// connection plus many frames for streaming) and hold no cross-call
// mutable state, so a Provider value is safe to discard after a call.
type Provider interface {
	// SendMessage sends a conversation and returns the complete answer
	// text. A reachable vendor either returns non-empty text or a
	// vendor-API error; an empty success is never returned silently.
	SendMessage(ctx context.Context, messages []Message) (string, error)

	// SendMessageStream sends a conversation and delivers the answer
	// incrementally through handlers. The returned error mirrors the
	// OnError callback so both push- and pull-style consumers observe
	// a failure.
	SendMessageStream(ctx context.Context, messages []Message, handlers StreamHandlers) error

	// SendMessageWithThinking sends a conversation and additionally
	// attempts to recover the model's reasoning trace. Recovery is
	// best-effort; Content is always populated.
	SendMessageWithThinking(ctx context.Context, messages []Message) (*ThinkingResponse, error)

	// FetchModels lists the models the vendor offers.
	FetchModels(ctx context.Context) ([]ModelInfo, error)

	// TestConnection performs a trivial one-token round trip to verify
	// the endpoint and credential.
	TestConnection(ctx context.Context) error
}
