package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewMessage(t *testing.T) {
	msg := NewMessage(RoleUser, "Hello, world!")
	if msg.Role != RoleUser {
		t.Errorf("Expected role %v, got %v", RoleUser, msg.Role)
	}
	if msg.Content != "Hello, world!" {
		t.Errorf("Expected content 'Hello, world!', got %q", msg.Content)
	}
}

func TestMessageToJSON(t *testing.T) {
	msg := NewMessage(RoleAssistant, "Test message")
	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("Failed to marshal message: %v", err)
	}
	var decoded Message
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if decoded.Role != msg.Role || decoded.Content != msg.Content {
		t.Errorf("Round trip changed message: %+v", decoded)
	}
}

func TestStreamHandlersNilCallbacksAreSafe(t *testing.T) {
	var h StreamHandlers
	h.Token("fragment")
	h.Complete()
	h.Error(errors.New("boom"))
}

func TestStreamHandlersDispatch(t *testing.T) {
	var tokens []string
	var completed bool
	h := StreamHandlers{
		OnToken:    func(s string) { tokens = append(tokens, s) },
		OnComplete: func() { completed = true },
	}
	h.Token("a")
	h.Token("b")
	h.Complete()
	if len(tokens) != 2 || tokens[0] != "a" || tokens[1] != "b" {
		t.Errorf("Unexpected tokens: %v", tokens)
	}
	if !completed {
		t.Error("Expected OnComplete to fire")
	}
}

func TestThinkingResponseHasThinking(t *testing.T) {
	with := &ThinkingResponse{Thinking: "trace", Content: "answer"}
	without := &ThinkingResponse{Content: "answer"}
	if !with.HasThinking() {
		t.Error("Expected HasThinking to be true")
	}
	if without.HasThinking() {
		t.Error("Expected HasThinking to be false")
	}
}
