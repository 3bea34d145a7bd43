package llm

import (
	"fmt"
	"strings"
)

// ValidationLevel selects how strictly ValidateModelConfig checks a
// config. Full is required before a completion call; Minimal (credential
// and base URL only) is enough for listing available models, which does
// not need a selected default model.
type ValidationLevel int

const (
	ValidationFull ValidationLevel = iota
	ValidationMinimal
)

// ValidateMessages checks a conversation before any network call is
// attempted. It fails if the sequence is empty or if any entry has a
// role outside {system, user, assistant} or empty content. Pure, no
// side effects.
func ValidateMessages(messages []Message) error {
	if len(messages) == 0 {
		return NewValidationError("message list is empty", "messages")
	}
	for i, msg := range messages {
		switch msg.Role {
		case RoleSystem, RoleUser, RoleAssistant:
		default:
			return NewValidationError(
				fmt.Sprintf("message %d has invalid role %q", i, msg.Role),
				fmt.Sprintf("messages[%d].role", i),
			)
		}
		if strings.TrimSpace(msg.Content) == "" {
			return NewValidationError(
				fmt.Sprintf("message %d has empty content", i),
				fmt.Sprintf("messages[%d].content", i),
			)
		}
	}
	return nil
}

// ValidateModelConfig checks a model configuration before use. At the
// Minimal level only the credential and base URL are required. At the
// Full level the vendor, default model, and enabled flag are checked as
// well.
func ValidateModelConfig(cfg *ModelConfig, level ValidationLevel) error {
	if cfg == nil {
		return NewConfigurationError("model config is missing", "")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return NewConfigurationError("api key is missing", "api_key")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return NewConfigurationError("base url is missing", "base_url")
	}
	if level == ValidationMinimal {
		return nil
	}
	if strings.TrimSpace(cfg.Vendor) == "" {
		return NewConfigurationError("vendor is missing", "vendor")
	}
	if !cfg.Enabled {
		return NewConfigurationError(
			fmt.Sprintf("model config %q is disabled", cfg.Name), "enabled")
	}
	if strings.TrimSpace(cfg.DefaultModel) == "" {
		return NewConfigurationError("default model is missing", "default_model")
	}
	if len(cfg.Models) > 0 && !containsModel(cfg.Models, cfg.DefaultModel) {
		return NewConfigurationError(
			fmt.Sprintf("default model %q is not in the supported list", cfg.DefaultModel),
			"default_model",
		)
	}
	return nil
}

func containsModel(models []string, model string) bool {
	for _, m := range models {
		if m == model {
			return true
		}
	}
	return false
}
