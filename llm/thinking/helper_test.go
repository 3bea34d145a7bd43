package thinking

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestHelper() *Helper {
	return NewHelper(NewBaseExtractor(), zerolog.Nop())
}

func TestHelperNativeReasoningFieldIsAuthoritative(t *testing.T) {
	h := newTestHelper()
	// The text also carries markers; the native field must win and skip
	// text parsing entirely.
	thinking, content := h.Extract(RawResponse{
		Text:      "<think>marker trace</think>marker answer",
		Reasoning: "native trace",
	})

	if thinking != "native trace" {
		t.Errorf("Expected native reasoning field, got %q", thinking)
	}
	if content != "<think>marker trace</think>marker answer" {
		t.Errorf("Expected raw text as content, got %q", content)
	}
}

func TestHelperToolPayloadChannel(t *testing.T) {
	h := newTestHelper()
	thinking, content := h.Extract(RawResponse{
		Text:     "The answer is 4.",
		ToolName: ToolName,
		ToolArgs: `{"thoughts": "2+2 is basic arithmetic"}`,
	})

	if thinking != "2+2 is basic arithmetic" {
		t.Errorf("Expected tool payload thoughts, got %q", thinking)
	}
	if content != "The answer is 4." {
		t.Errorf("Unexpected content: %q", content)
	}
}

func TestHelperMalformedToolPayloadFallsThrough(t *testing.T) {
	h := newTestHelper()
	thinking, content := h.Extract(RawResponse{
		Text:     "<think>scanned trace</think>scanned answer",
		ToolName: ToolName,
		ToolArgs: `{not json`,
	})

	if thinking != "scanned trace" {
		t.Errorf("Expected fall-through to text scan, got %q", thinking)
	}
	if content != "scanned answer" {
		t.Errorf("Unexpected content: %q", content)
	}
}

func TestHelperTextScanChannel(t *testing.T) {
	h := newTestHelper()
	thinking, content := h.Extract(RawResponse{
		Text: "<think>because 9.11 < 9.9 numerically when compared as decimals</think>9.8 is larger.",
	})

	if thinking != "because 9.11 < 9.9 numerically when compared as decimals" {
		t.Errorf("Unexpected thinking: %q", thinking)
	}
	if content != "9.8 is larger." {
		t.Errorf("Unexpected content: %q", content)
	}
}

func TestHelperNoThinkingFound(t *testing.T) {
	h := newTestHelper()
	thinking, content := h.Extract(RawResponse{Text: "plain answer"})

	if thinking != "" {
		t.Errorf("Expected no thinking, got %q", thinking)
	}
	if content != "plain answer" {
		t.Errorf("Unexpected content: %q", content)
	}
}

func TestHelperOpenEndedBlockKeepsRawContent(t *testing.T) {
	h := newTestHelper()
	raw := "<think>trace with no close"
	thinking, content := h.Extract(RawResponse{Text: raw})

	if thinking != "trace with no close" {
		t.Errorf("Unexpected thinking: %q", thinking)
	}
	if content != raw {
		t.Errorf("Expected raw text fallback for content, got %q", content)
	}
}

func TestHelperFormat(t *testing.T) {
	h := newTestHelper()
	out := h.Format(RawResponse{Text: "<think>check the math</think>It holds."})

	if !strings.Contains(out, "Thinking process:") || !strings.Contains(out, "Final answer:") {
		t.Errorf("Expected header pair in combined output, got %q", out)
	}
	if !strings.Contains(out, "check the math") || !strings.Contains(out, "It holds.") {
		t.Errorf("Expected both segments in combined output, got %q", out)
	}
}

func TestHelperFormatWithoutThinking(t *testing.T) {
	h := newTestHelper()
	out := h.Format(RawResponse{Text: "just text"})

	if out != "just text" {
		t.Errorf("Expected plain content without headers, got %q", out)
	}
}
