package factory

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/promptdeck/llmgate/llm"
)

func TestCanonicalKnownVendors(t *testing.T) {
	cases := map[string]Vendor{
		"openai":    VendorOpenAI,
		"OpenAI":    VendorOpenAI,
		"  GEMINI ": VendorGemini,
		"anthropic": VendorAnthropic,
		"deepseek":  VendorDeepSeek,
		"ollama":    VendorOllama,
	}
	for name, want := range cases {
		if got := Canonical(name); got != want {
			t.Errorf("Canonical(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestCanonicalUnknownFallsBackToGeneric(t *testing.T) {
	// Most REST LLM vendors are chat-completion-compatible, so an
	// unrecognized vendor maps to the generic adapter instead of failing.
	if got := Canonical("totally-new-vendor"); got != VendorGeneric {
		t.Errorf("Canonical(unknown) = %q, want %q", got, VendorGeneric)
	}
}

type stubProvider struct {
	llm.Provider
}

func TestRegisterRuntimeVendor(t *testing.T) {
	stub := &stubProvider{}
	Register("customvendor", func(cfg *llm.ModelConfig, logger zerolog.Logger) (llm.Provider, error) {
		return stub, nil
	})

	if got := Canonical("CustomVendor"); got != Vendor("customvendor") {
		t.Fatalf("Canonical(customvendor) = %q after registration", got)
	}

	p, err := New(&llm.ModelConfig{Vendor: "customvendor"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p != stub {
		t.Error("Expected registered constructor to be used")
	}
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil, zerolog.Nop())
	if !llm.IsConfigurationError(err) {
		t.Fatalf("Expected configuration error, got %v", err)
	}
}

func TestNewBuildsGenericAdapterForCompatibleVendors(t *testing.T) {
	cfg := &llm.ModelConfig{
		Vendor:       "deepseek",
		BaseURL:      "https://api.deepseek.com/v1",
		APIKey:       "sk-test",
		DefaultModel: "deepseek-chat",
		Enabled:      true,
	}
	p, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p == nil {
		t.Fatal("Expected a provider")
	}
}
