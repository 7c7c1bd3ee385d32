package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/j-veylop/waka-box/internal/stats"
)

// FileConfig represents the optional TOML configuration file.
type FileConfig struct {
	Title *string           `toml:"title"`
	Merge []stats.MergeRule `toml:"merge"`
}

// LoadFile reads a TOML config from the given path. Missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	for i, rule := range fc.Merge {
		if strings.TrimSpace(rule.Source) == "" || strings.TrimSpace(rule.Target) == "" {
			return FileConfig{}, fmt.Errorf("merge rule %d in %s needs both source and target", i+1, path)
		}
	}
	return fc, nil
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.Title != nil && *fc.Title != "" {
		cfg.Title = *fc.Title
	}
	if fc.Merge != nil {
		cfg.MergeRules = fc.Merge
	}
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "wakabox", "config.toml")
}
