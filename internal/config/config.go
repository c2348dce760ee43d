// Package config loads the optional devdust YAML configuration:
// default scan paths, exclusions, the age filter, and user-defined
// project rules merged into the builtin table.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/extrise/devdust/internal/rules"
	"github.com/extrise/devdust/internal/ui"
)

// Config mirrors the YAML file layout.
type Config struct {
	Scan  ScanConfig   `yaml:"scan"`
	Rules []CustomRule `yaml:"rules"`
}

// ScanConfig holds scan defaults. Command-line flags override these.
type ScanConfig struct {
	Paths          []string `yaml:"paths"`
	Exclude        []string `yaml:"exclude"`
	Older          string   `yaml:"older"`
	FollowSymlinks bool     `yaml:"follow_symlinks"`
	SameFilesystem bool     `yaml:"same_filesystem"`
}

// CustomRule is a user-defined project type. Markers are exact
// filenames; artifacts are directory names relative to the project
// root and may contain glob metacharacters.
type CustomRule struct {
	Name      string   `yaml:"name"`
	Markers   []string `yaml:"markers"`
	Artifacts []string `yaml:"artifacts"`
}

// DefaultPath returns the conventional config location,
// ~/.config/devdust/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "devdust", "config.yaml")
}

// Load reads and validates the config at path. Tilde in scan paths is
// expanded to the user's home directory.
func Load(path string) (*Config, error) {
	expanded, err := expandTilde(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", expanded, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, fmt.Errorf("applying defaults: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads the config from the default location, or returns
// an empty config when no file exists there.
func LoadOrDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return &Config{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		return &Config{}, nil
	}
	return Load(path)
}

// Table returns the builtin rule table with the config's custom rules
// appended. Builtin rules win on marker collisions.
func (c *Config) Table() rules.Table {
	table := rules.Builtin()
	for _, r := range c.Rules {
		table = append(table, rules.Rule{
			Name:      r.Name,
			Markers:   append([]string(nil), r.Markers...),
			Artifacts: append([]string(nil), r.Artifacts...),
		})
	}
	return table
}

// applyDefaults normalizes paths and fills optional fields.
func applyDefaults(cfg *Config) error {
	for i, p := range cfg.Scan.Paths {
		expanded, err := expandTilde(p)
		if err != nil {
			return fmt.Errorf("expanding scan path %s: %w", p, err)
		}
		cfg.Scan.Paths[i] = expanded
	}
	return nil
}

// validate ensures the age filter parses and custom rules are complete.
func validate(cfg *Config) error {
	if cfg.Scan.Older != "" {
		if _, err := ui.ParseAge(cfg.Scan.Older); err != nil {
			return fmt.Errorf("scan.older: %w", err)
		}
	}

	for i, r := range cfg.Rules {
		if r.Name == "" {
			return fmt.Errorf("rules[%d]: name is required", i)
		}
		if len(r.Markers) == 0 {
			return fmt.Errorf("rules[%d] (%s): at least one marker is required", i, r.Name)
		}
		if len(r.Artifacts) == 0 {
			return fmt.Errorf("rules[%d] (%s): at least one artifact is required", i, r.Name)
		}
	}

	return nil
}

// expandTilde replaces ~ at the start of a path with the user's home
// directory.
func expandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	if path == "~" {
		return homeDir, nil
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:]), nil
	}

	return path, nil
}
