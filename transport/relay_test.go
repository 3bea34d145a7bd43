package transport

import "testing"

func TestRelayBaseURLDisabled(t *testing.T) {
	t.Setenv(RelayURLEnv, "https://relay.example.com")
	got := RelayBaseURL("https://api.deepseek.com/v1", "deepseek", false)
	if got != "https://api.deepseek.com/v1" {
		t.Errorf("Expected the original URL with the relay off, got %q", got)
	}
}

func TestRelayBaseURLUnconfigured(t *testing.T) {
	t.Setenv(RelayURLEnv, "")
	got := RelayBaseURL("https://api.deepseek.com/v1", "deepseek", true)
	if got != "https://api.deepseek.com/v1" {
		t.Errorf("Expected the original URL with no relay configured, got %q", got)
	}
}

func TestRelayBaseURLAppendsVendorSegment(t *testing.T) {
	t.Setenv(RelayURLEnv, "https://relay.example.com/llm/")
	got := RelayBaseURL("https://api.deepseek.com/v1", "DeepSeek", true)
	if got != "https://relay.example.com/llm/deepseek" {
		t.Errorf("Unexpected relay URL: %q", got)
	}
}

func TestRelayBaseURLEmptyVendor(t *testing.T) {
	t.Setenv(RelayURLEnv, "https://relay.example.com")
	got := RelayBaseURL("https://api.openai.com/v1", "", true)
	if got != "https://relay.example.com" {
		t.Errorf("Unexpected relay URL: %q", got)
	}
}
