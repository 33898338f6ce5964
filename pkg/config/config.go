// Package config holds the tunable limits for catlint and loads optional
// overrides from a .catlint.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/catlint/pkg/format"
	"github.com/yaklabco/catlint/pkg/linkcheck"
)

// configFileNames are the file names searched for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".catlint.yml",
	".catlint.yaml",
	"catlint.yml",
	"catlint.yaml",
}

// Duration is a time.Duration that unmarshals from YAML strings in
// time.ParseDuration form ("25s", "1m30s").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config carries every tunable the checkers accept. The zero value is not
// usable; start from Default.
type Config struct {
	// Timeout is the total per-link probe budget.
	Timeout Duration `yaml:"timeout"`

	// MaxRedirects caps a probe's redirect chain.
	MaxRedirects int `yaml:"max_redirects"`

	// MinEntriesPerCategory is the minimum entry count enforced at each
	// category boundary.
	MinEntriesPerCategory int `yaml:"min_entries_per_category"`

	// MaxDescriptionLength bounds entry descriptions, in characters.
	MaxDescriptionLength int `yaml:"max_description_length"`

	// UserAgents overrides the probe's User-Agent pool when non-empty.
	UserAgents []string `yaml:"user_agents"`
}

// Default returns the configuration the published catalog tooling uses.
func Default() *Config {
	return &Config{
		Timeout:               Duration(linkcheck.DefaultTimeout),
		MaxRedirects:          linkcheck.DefaultMaxRedirects,
		MinEntriesPerCategory: format.DefaultMinEntriesPerCategory,
		MaxDescriptionLength:  format.DefaultMaxDescriptionLength,
	}
}

// Validate reports the first nonsensical setting.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.MaxRedirects <= 0 {
		return errors.New("max_redirects must be positive")
	}
	if c.MinEntriesPerCategory < 1 {
		return errors.New("min_entries_per_category must be at least 1")
	}
	if c.MaxDescriptionLength < 1 {
		return errors.New("max_description_length must be at least 1")
	}
	return nil
}

// Load reads a YAML config file and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Discover searches upward from dir for a config file and returns its path.
// Missing config is not an error: found is false and the caller uses the
// defaults.
func Discover(dir string) (path string, found bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
