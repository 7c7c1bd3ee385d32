// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/j-veylop/waka-box/internal/stats"
)

// Config holds the application configuration.
type Config struct {
	GistID         string
	GitHubToken    string
	WakaTimeAPIKey string
	WakaTimeURL    string
	GitHubURL      string
	ConfigPath     string
	LogLevel       string
	Title          string
	MergeRules     []stats.MergeRule
	HTTPTimeout    time.Duration
}

// Default values
const (
	DefaultTitle       = "📊 Weekly development breakdown"
	defaultHTTPTimeout = 30 * time.Second
	defaultWakaTimeURL = "https://wakatime.com/api/v1"
	defaultGitHubURL   = "https://api.github.com"
)

// Load reads the configuration needed to update the gist from .env files,
// environment variables and the optional TOML file.
func Load() (*Config, error) {
	return load(true)
}

// LoadStatsOnly is Load for commands that only read from WakaTime.
// GIST_ID and GH_TOKEN are not required.
func LoadStatsOnly() (*Config, error) {
	return load(false)
}

func load(needGist bool) (*Config, error) {
	// Try loading .env from multiple locations
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		GistID:         os.Getenv("GIST_ID"),
		GitHubToken:    os.Getenv("GH_TOKEN"),
		WakaTimeAPIKey: os.Getenv("WAKATIME_API_KEY"),
		WakaTimeURL:    getEnvString("WAKATIME_API_URL", defaultWakaTimeURL),
		GitHubURL:      getEnvString("GITHUB_API_URL", defaultGitHubURL),
		ConfigPath:     getEnvString("WAKABOX_CONFIG", DefaultConfigPath()),
		LogLevel:       getEnvString("LOG_LEVEL", "info"),
		Title:          DefaultTitle,
		MergeRules:     stats.DefaultMergeRules(),
		HTTPTimeout:    getEnvDuration("HTTP_TIMEOUT", defaultHTTPTimeout),
	}

	if missing := cfg.missing(needGist); len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	fileCfg, err := LoadFile(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	fileCfg.apply(cfg)

	return cfg, nil
}

func (c *Config) missing(needGist bool) []string {
	var missing []string
	if needGist && c.GistID == "" {
		missing = append(missing, "GIST_ID")
	}
	if needGist && c.GitHubToken == "" {
		missing = append(missing, "GH_TOKEN")
	}
	if c.WakaTimeAPIKey == "" {
		missing = append(missing, "WAKATIME_API_KEY")
	}
	return missing
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	paths = append(paths, filepath.Join(XDGConfigHome(), "wakabox", ".env"))

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".wakabox", ".env"))
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
