package anthropic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/promptdeck/llmgate/llm"
)

func TestFetchModelsReturnsCatalogWithoutNetwork(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	c, err := New(&llm.ModelConfig{
		Vendor:       "anthropic",
		BaseURL:      server.URL + "/v1",
		APIKey:       "sk-ant-test",
		DefaultModel: "claude-sonnet-4-5",
		Enabled:      true,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	models, err := c.FetchModels(context.Background())
	if err != nil {
		t.Fatalf("FetchModels failed: %v", err)
	}
	if len(models) == 0 {
		t.Fatal("Expected a non-empty model catalog")
	}
	for _, m := range models {
		if m.ID == "" || m.Name == "" {
			t.Errorf("Catalog entry missing ID or Name: %+v", m)
		}
	}
	if calls.Load() != 0 {
		t.Errorf("Expected no network calls for the fixed catalog, got %d", calls.Load())
	}
}

func TestNewDefaultsBaseURL(t *testing.T) {
	c, err := New(&llm.ModelConfig{
		Vendor:       "anthropic",
		APIKey:       "sk-ant-test",
		DefaultModel: "claude-sonnet-4-5",
		Enabled:      true,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c == nil {
		t.Fatal("Expected a client")
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(&llm.ModelConfig{Vendor: "anthropic"}, zerolog.Nop())
	if !llm.IsConfigurationError(err) {
		t.Fatalf("Expected configuration error, got %v", err)
	}
}
