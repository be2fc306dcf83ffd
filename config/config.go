// Package config loads the optional pipeline configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the YAML configuration file. Command line flags take
// precedence over values set here.
type Config struct {
	// Pos is the tagging mode, "rules" or "manual".
	Pos string `yaml:"pos"`

	// LemmaDataset is the path to a lemma<TAB>surface_form file.
	LemmaDataset string `yaml:"lemma_dataset"`

	// Stopwords fully replaces the default stopword set when non-empty.
	Stopwords []string `yaml:"stopwords"`

	// SuffixRules enables suffix-stripping lemmatization fallback.
	SuffixRules bool `yaml:"suffix_rules"`

	// ManualStore is the path to the manual POS label store
	// (.json file or SQLite database).
	ManualStore string `yaml:"manual_store"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if c.Pos != "" && c.Pos != "rules" && c.Pos != "manual" {
		return nil, fmt.Errorf("config %s: pos must be rules or manual, got %q", path, c.Pos)
	}

	return &c, nil
}
