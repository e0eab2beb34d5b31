// Package config loads the optional jsdiet.yaml batch configuration used to
// audit several pages in one run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Page is one detection report to audit.
type Page struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Config is the jsdiet.yaml document.
type Config struct {
	// Optional dataset overrides; embedded defaults are used when empty.
	Stats       string `yaml:"stats"`
	Suggestions string `yaml:"suggestions"`

	Format string `yaml:"format"`
	NoMoji bool   `yaml:"nomoji"`
	Pages  []Page `yaml:"pages"`
}

// Load reads and validates a batch config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(cfg.Pages) == 0 {
		return nil, fmt.Errorf("config %s defines no pages", path)
	}
	for i, page := range cfg.Pages {
		if page.Input == "" {
			return nil, fmt.Errorf("config %s: page %d has no input", path, i)
		}
	}
	return &cfg, nil
}
