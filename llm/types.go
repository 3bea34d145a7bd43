package llm

import (
	"encoding/json"
)

// MessageRole represents the role of a message in a conversation.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message represents a single message in a conversation.
// Messages are immutable once constructed and owned by the caller;
// providers only read them.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// NewMessage creates a message with the given role and text content.
func NewMessage(role MessageRole, content string) Message {
	return Message{Role: role, Content: content}
}

// ModelConfig describes one configured vendor endpoint. Records are
// supplied by the model-configuration store and treated as read-only
// value objects by this subsystem.
type ModelConfig struct {
	Vendor       string   `yaml:"vendor" json:"vendor"`
	Name         string   `yaml:"name" json:"name"`
	BaseURL      string   `yaml:"base_url" json:"base_url"`
	APIKey       string   `yaml:"api_key" json:"api_key"`
	Models       []string `yaml:"models,omitempty" json:"models,omitempty"`
	DefaultModel string   `yaml:"default_model" json:"default_model"`
	Enabled      bool     `yaml:"enabled" json:"enabled"`
	UseRelay     bool     `yaml:"use_relay,omitempty" json:"use_relay,omitempty"`
	Temperature  *float64 `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	MaxTokens    int64    `yaml:"max_tokens,omitempty" json:"max_tokens,omitempty"`
}

// ModelInfo identifies one model offered by a vendor, as returned by
// FetchModels.
type ModelInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StreamHandlers carries the callbacks of one streaming call.
//
// OnToken may fire zero or more times, strictly in the order fragments
// arrive on the wire. Exactly one terminal callback (OnComplete or
// OnError) fires per call, after all OnToken calls have completed.
// Nil callbacks are skipped.
type StreamHandlers struct {
	OnToken    func(fragment string)
	OnComplete func()
	OnError    func(err error)
}

// Token invokes OnToken if set.
func (h StreamHandlers) Token(fragment string) {
	if h.OnToken != nil {
		h.OnToken(fragment)
	}
}

// Complete invokes OnComplete if set.
func (h StreamHandlers) Complete() {
	if h.OnComplete != nil {
		h.OnComplete()
	}
}

// Error invokes OnError if set.
func (h StreamHandlers) Error(err error) {
	if h.OnError != nil {
		h.OnError(err)
	}
}

// ThinkingResponse is the result of SendMessageWithThinking. Thinking is
// empty when no reasoning trace could be recovered by any channel;
// Content always carries the answer text, falling back to the raw
// response when no split was possible.
type ThinkingResponse struct {
	Thinking string `json:"thinking,omitempty"`
	Content  string `json:"content"`
}

// HasThinking reports whether a reasoning trace was recovered.
func (r *ThinkingResponse) HasThinking() bool {
	return r.Thinking != ""
}

// ToJSON marshals a message to JSON for debugging/logging purposes.
func (m Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
