// Package tuning loads scene configuration from YAML files and watches them
// for edits.
//
// A tuning file only needs the fields it changes:
//
//	glow_hearts: 25
//	bloom_speed: 1.5
//	caption: "Happy anniversary"
//
// Everything else keeps its keepsake.DefaultConfig value.
package tuning

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/keepsake"
)

// Load reads path and overlays it onto the default configuration. An empty
// path returns the defaults.
func Load(path string) (keepsake.Config, error) {
	cfg := keepsake.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("tuning: %w", err)
	}
	return Parse(data, cfg)
}

// Parse overlays YAML data onto base. Unknown keys are rejected so typos do
// not silently fall back to defaults. The result is validated.
func Parse(data []byte, base keepsake.Config) (keepsake.Config, error) {
	cfg := base
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return base, fmt.Errorf("tuning: parse: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("tuning: %w", err)
	}
	return cfg, nil
}

// Marshal renders cfg as a complete tuning file.
func Marshal(cfg keepsake.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("tuning: marshal: %w", err)
	}
	return data, nil
}
