// Package config implements the model-configuration store boundary: a
// read-only, file-backed catalog of ModelConfig records keyed by name.
// The gateway consumes it through its ConfigStore interface and never
// writes back.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/promptdeck/llmgate/llm"
)

// File is the on-disk shape: a map of config name to model config.
type File struct {
	Models map[string]*llm.ModelConfig `yaml:"models"`
}

// vendorDefaults fill fields a config file may omit. Merging never
// overwrites values the file sets.
var vendorDefaults = map[string]llm.ModelConfig{
	"openai":    {BaseURL: "https://api.openai.com/v1"},
	"deepseek":  {BaseURL: "https://api.deepseek.com/v1"},
	"anthropic": {BaseURL: "https://api.anthropic.com/v1"},
	"gemini":    {BaseURL: "https://generativelanguage.googleapis.com"},
	"ollama":    {BaseURL: "http://localhost:11434/v1", APIKey: "ollama"},
}

// Store holds the loaded catalog.
type Store struct {
	configs map[string]*llm.ModelConfig
}

// Load reads and parses a model-configuration file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Store from raw YAML, applying vendor defaults to each
// record and defaulting the record name to its map key.
func Parse(data []byte) (*Store, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	configs := make(map[string]*llm.ModelConfig, len(file.Models))
	for name, cfg := range file.Models {
		if cfg == nil {
			cfg = &llm.ModelConfig{}
		}
		if cfg.Name == "" {
			cfg.Name = name
		}
		if defaults, ok := vendorDefaults[strings.ToLower(cfg.Vendor)]; ok {
			if err := mergo.Merge(cfg, defaults); err != nil {
				return nil, fmt.Errorf("failed to apply defaults for %s: %w", name, err)
			}
		}
		configs[name] = cfg
	}

	return &Store{configs: configs}, nil
}

// Get implements the gateway's ConfigStore interface. A copy is returned
// so callers cannot mutate the catalog; reference fields are cloned so
// the copy shares no backing storage with it.
func (s *Store) Get(_ context.Context, key string) (*llm.ModelConfig, error) {
	cfg, ok := s.configs[key]
	if !ok {
		return nil, llm.NewConfigurationError(
			fmt.Sprintf("no model config named %q", key), "name")
	}
	out := *cfg
	if cfg.Models != nil {
		out.Models = append([]string(nil), cfg.Models...)
	}
	if cfg.Temperature != nil {
		temp := *cfg.Temperature
		out.Temperature = &temp
	}
	return &out, nil
}

// Keys lists the configured record names.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.configs))
	for k := range s.configs {
		keys = append(keys, k)
	}
	return keys
}
