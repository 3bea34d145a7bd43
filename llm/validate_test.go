package llm

import (
	"testing"
)

func validConfig() *ModelConfig {
	return &ModelConfig{
		Vendor:       "openai",
		Name:         "primary",
		BaseURL:      "https://api.openai.com/v1",
		APIKey:       "sk-test",
		Models:       []string{"gpt-4o", "gpt-4o-mini"},
		DefaultModel: "gpt-4o",
		Enabled:      true,
	}
}

func TestValidateMessages(t *testing.T) {
	msgs := []Message{
		NewMessage(RoleSystem, "You are terse."),
		NewMessage(RoleUser, "Which is larger, 9.8 or 9.11?"),
	}
	if err := ValidateMessages(msgs); err != nil {
		t.Fatalf("Expected valid messages, got %v", err)
	}
}

func TestValidateMessagesEmpty(t *testing.T) {
	err := ValidateMessages(nil)
	if !IsValidationError(err) {
		t.Fatalf("Expected validation error for empty list, got %v", err)
	}
}

func TestValidateMessagesBadRole(t *testing.T) {
	err := ValidateMessages([]Message{{Role: "tool", Content: "x"}})
	if !IsValidationError(err) {
		t.Fatalf("Expected validation error for bad role, got %v", err)
	}
}

func TestValidateMessagesEmptyContent(t *testing.T) {
	err := ValidateMessages([]Message{{Role: RoleUser, Content: "   "}})
	if !IsValidationError(err) {
		t.Fatalf("Expected validation error for empty content, got %v", err)
	}
}

func TestValidateModelConfigFull(t *testing.T) {
	if err := ValidateModelConfig(validConfig(), ValidationFull); err != nil {
		t.Fatalf("Expected valid config, got %v", err)
	}
}

func TestValidateModelConfigMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ModelConfig)
	}{
		{"nil config", nil},
		{"missing api key", func(c *ModelConfig) { c.APIKey = "" }},
		{"missing base url", func(c *ModelConfig) { c.BaseURL = "" }},
		{"missing vendor", func(c *ModelConfig) { c.Vendor = "" }},
		{"missing default model", func(c *ModelConfig) { c.DefaultModel = "" }},
		{"disabled", func(c *ModelConfig) { c.Enabled = false }},
		{"default model not in list", func(c *ModelConfig) { c.DefaultModel = "gpt-3.5-turbo" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var cfg *ModelConfig
			if tc.mutate != nil {
				cfg = validConfig()
				tc.mutate(cfg)
			}
			if err := ValidateModelConfig(cfg, ValidationFull); !IsConfigurationError(err) {
				t.Errorf("Expected configuration error, got %v", err)
			}
		})
	}
}

func TestValidateModelConfigMinimal(t *testing.T) {
	// Minimal strictness needs only credential and base URL; listing
	// models works without a selected default model.
	cfg := &ModelConfig{APIKey: "sk-test", BaseURL: "https://api.openai.com/v1"}
	if err := ValidateModelConfig(cfg, ValidationMinimal); err != nil {
		t.Fatalf("Expected minimal validation to pass, got %v", err)
	}
	if err := ValidateModelConfig(cfg, ValidationFull); !IsConfigurationError(err) {
		t.Fatalf("Expected full validation to fail, got %v", err)
	}
}

func TestValidateModelConfigEmptyModelListAllowsAnyDefault(t *testing.T) {
	cfg := validConfig()
	cfg.Models = nil
	if err := ValidateModelConfig(cfg, ValidationFull); err != nil {
		t.Fatalf("Expected config without a model list to validate, got %v", err)
	}
}
