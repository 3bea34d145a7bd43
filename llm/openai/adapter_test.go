package openai

import "testing"

func TestSupportsFunctionCalling(t *testing.T) {
	tests := []struct {
		vendor, model string
		want          bool
	}{
		{"openai", "gpt-4o", true},
		{"openai", "o1-mini", false},
		{"openai", "o1-preview", false},
		{"deepseek", "deepseek-chat", true},
		{"deepseek", "deepseek-reasoner", false},
		{"deepseek", "deepseek-r1", false},
		{"ollama", "llama3.2", true},
		{"ollama", "deepseek-r1:7b", false},
		{"anthropic", "qwq-32b", false},
	}
	for _, tt := range tests {
		if got := supportsFunctionCalling(tt.vendor, tt.model); got != tt.want {
			t.Errorf("supportsFunctionCalling(%q, %q) = %v, want %v", tt.vendor, tt.model, got, tt.want)
		}
	}
}

func TestIsReasonerModel(t *testing.T) {
	tests := []struct {
		model string
		want  bool
	}{
		{"deepseek-reasoner", true},
		{"deepseek-r1:32b", true},
		{"r1-distill-llama", true},
		{"qwq-32b-preview", true},
		{"gpt-4o", false},
		{"deepseek-chat", false},
	}
	for _, tt := range tests {
		if got := isReasonerModel(tt.model); got != tt.want {
			t.Errorf("isReasonerModel(%q) = %v, want %v", tt.model, got, tt.want)
		}
	}
}
