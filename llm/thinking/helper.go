package thinking

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

// ToolName is the function-calling convention for models that surface
// their reasoning through a tool invocation: a tool by this name whose
// single argument carries the trace.
const ToolName = "show_reasoning"

// ToolThoughtsField is the argument field holding the trace.
const ToolThoughtsField = "thoughts"

// Combined display string headers used by Format.
const (
	thinkingHeader = "Thinking process:"
	answerHeader   = "Final answer:"
)

// RawResponse is the vendor-neutral view of one response that the
// adapter hands to the helper: the plain text, the native reasoning
// field if the vendor exposes one, and the tool invocation if the model
// answered through function calling.
type RawResponse struct {
	Text      string
	Reasoning string
	ToolName  string
	ToolArgs  string // raw JSON arguments of the tool invocation
}

// Helper coordinates the three acquisition channels in fixed priority
// order: native reasoning field, tool payload, marker-scanned text.
type Helper struct {
	extractor Extractor
	logger    zerolog.Logger
}

// NewHelper creates a Helper around the given extractor.
func NewHelper(extractor Extractor, logger zerolog.Logger) *Helper {
	if extractor == nil {
		extractor = NewBaseExtractor()
	}
	return &Helper{extractor: extractor, logger: logger}
}

// Extract recovers (thinking, content) from a response. The native
// reasoning field is authoritative and skips text parsing entirely; a
// show_reasoning tool payload is next; the marker scan is the fallback.
// Content is always populated, falling back to the raw response text.
func (h *Helper) Extract(resp RawResponse) (thinking, content string) {
	if resp.Reasoning != "" {
		return resp.Reasoning, resp.Text
	}

	if resp.ToolName == ToolName {
		if thoughts, ok := h.parseToolThoughts(resp.ToolArgs); ok {
			return thoughts, resp.Text
		}
	}

	res := h.extractor.Extract(resp.Text)
	if !res.HasThinking {
		return "", resp.Text
	}
	if !res.HasAnswer || res.Answer == "" {
		// Open-ended thinking block: keep the raw text as content so the
		// caller never receives an empty answer.
		return res.Thinking, resp.Text
	}
	return res.Thinking, res.Answer
}

// Format renders a response as one combined display string, prefixing
// the thinking/answer header pair when a trace was found.
func (h *Helper) Format(resp RawResponse) string {
	thinking, content := h.Extract(resp)
	if thinking == "" {
		return content
	}
	return thinkingHeader + "\n" + thinking + "\n\n" + answerHeader + "\n" + content
}

// parseToolThoughts parses a show_reasoning argument payload. A payload
// that does not decode, or decodes without a thoughts field, is treated
// as a miss rather than an error.
func (h *Helper) parseToolThoughts(args string) (string, bool) {
	if args == "" {
		return "", false
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(args), &payload); err != nil {
		h.logger.Debug().Err(err).Msg("Unparseable reasoning tool payload")
		return "", false
	}
	thoughts, ok := payload[ToolThoughtsField].(string)
	if !ok || thoughts == "" {
		return "", false
	}
	return thoughts, true
}
