// Package factory maps a model configuration's declared vendor to a
// concrete adapter constructor. Vendors wire-compatible with the generic
// chat-completion protocol share the generic adapter, and unknown
// vendors fall back to it, on the assumption that most REST LLM vendors
// are chat-completion-compatible.
package factory

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/promptdeck/llmgate/llm"
	"github.com/promptdeck/llmgate/llm/anthropic"
	"github.com/promptdeck/llmgate/llm/gemini"
	"github.com/promptdeck/llmgate/llm/openai"
)

// Vendor is the closed set of supported vendor tags, plus the generic
// fallback variant. Register extends the set at startup.
type Vendor string

const (
	VendorOpenAI    Vendor = "openai"
	VendorDeepSeek  Vendor = "deepseek"
	VendorOllama    Vendor = "ollama"
	VendorGemini    Vendor = "gemini"
	VendorAnthropic Vendor = "anthropic"
	VendorGeneric   Vendor = "generic"
)

// Constructor builds an adapter for one config.
type Constructor func(cfg *llm.ModelConfig, logger zerolog.Logger) (llm.Provider, error)

var (
	mu           sync.RWMutex
	constructors = map[Vendor]Constructor{}
)

func init() {
	generic := func(cfg *llm.ModelConfig, logger zerolog.Logger) (llm.Provider, error) {
		return openai.New(cfg, logger)
	}
	Register(VendorOpenAI, generic)
	// DeepSeek-style and locally-hosted vendors speak the same wire
	// protocol; mapping them here avoids duplicate adapters.
	Register(VendorDeepSeek, generic)
	Register(VendorOllama, generic)
	Register(VendorGeneric, generic)
	Register(VendorGemini, func(cfg *llm.ModelConfig, logger zerolog.Logger) (llm.Provider, error) {
		return gemini.New(cfg, logger)
	})
	Register(VendorAnthropic, func(cfg *llm.ModelConfig, logger zerolog.Logger) (llm.Provider, error) {
		return anthropic.New(cfg, logger)
	})
}

// Register installs or replaces the constructor for a vendor tag. It is
// the open extension point for vendors added at startup.
func Register(vendor Vendor, ctor Constructor) {
	mu.Lock()
	defer mu.Unlock()
	constructors[vendor] = ctor
}

// Canonical resolves a declared vendor name, case-insensitively, to a
// registered vendor tag. Names with no registered constructor resolve to
// the generic variant.
func Canonical(name string) Vendor {
	vendor := Vendor(strings.ToLower(strings.TrimSpace(name)))
	mu.RLock()
	defer mu.RUnlock()
	if _, ok := constructors[vendor]; ok {
		return vendor
	}
	return VendorGeneric
}

// New builds the adapter for the config's declared vendor.
func New(cfg *llm.ModelConfig, logger zerolog.Logger) (llm.Provider, error) {
	if cfg == nil {
		return nil, llm.NewConfigurationError("model config is missing", "")
	}
	vendor := Canonical(cfg.Vendor)
	mu.RLock()
	ctor := constructors[vendor]
	mu.RUnlock()
	return ctor(cfg, logger)
}
