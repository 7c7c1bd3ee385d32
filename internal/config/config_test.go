package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points every config lookup at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	for _, key := range []string{
		"GIST_ID", "GH_TOKEN", "WAKATIME_API_KEY", "WAKATIME_API_URL",
		"GITHUB_API_URL", "WAKABOX_CONFIG", "LOG_LEVEL", "HTTP_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
	return tmpDir
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("GIST_ID", "gist-123")
	t.Setenv("GH_TOKEN", "gh-token")
	t.Setenv("WAKATIME_API_KEY", "waka-key")
}

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_ENV_STRING", "test_value")

	if got := getEnvString("TEST_ENV_STRING", "default"); got != "test_value" {
		t.Errorf("getEnvString() = %q, want %q", got, "test_value")
	}

	if got := getEnvString("NON_EXISTENT", "default"); got != "default" {
		t.Errorf("getEnvString() = %q, want %q", got, "default")
	}
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_ENV_DURATION"

	tests := []struct {
		name       string
		envVal     string
		defaultVal time.Duration
		want       time.Duration
	}{
		{"ValidDuration", "1m", time.Second, time.Minute},
		{"ValidSeconds", "60", time.Second, 60 * time.Second},
		{"Invalid", "invalid", time.Second, time.Second},
		{"Empty", "", time.Second, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(key, tt.envVal)

			if got := getEnvDuration(key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetEnvPaths(t *testing.T) {
	tmpDir := isolate(t)

	paths := getEnvPaths()
	if len(paths) == 0 {
		t.Fatal("getEnvPaths() returned empty list")
	}

	cwd, _ := os.Getwd()
	if paths[0] != filepath.Join(cwd, ".env") {
		t.Errorf("first path = %q, want current directory .env", paths[0])
	}

	wantXDG := filepath.Join(tmpDir, "xdg", "wakabox", ".env")
	found := false
	for _, p := range paths {
		if p == wantXDG {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("getEnvPaths() missing %s", wantXDG)
	}
}

func TestLoad(t *testing.T) {
	isolate(t)
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.GistID != "gist-123" {
		t.Errorf("GistID = %q, want gist-123", cfg.GistID)
	}
	if cfg.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", cfg.Title, DefaultTitle)
	}
	if cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Errorf("HTTPTimeout = %v, want %v", cfg.HTTPTimeout, defaultHTTPTimeout)
	}
	if cfg.WakaTimeURL != defaultWakaTimeURL || cfg.GitHubURL != defaultGitHubURL {
		t.Errorf("unexpected API URLs: %q, %q", cfg.WakaTimeURL, cfg.GitHubURL)
	}
	if len(cfg.MergeRules) != 1 || cfg.MergeRules[0].Source != "Other" || cfg.MergeRules[0].Target != "TypeScript" {
		t.Errorf("MergeRules = %+v, want default rule", cfg.MergeRules)
	}
}

func TestLoad_MissingCredentials(t *testing.T) {
	isolate(t)
	t.Setenv("GIST_ID", "gist-123")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail when credentials are missing")
	}
	for _, name := range []string{"GH_TOKEN", "WAKATIME_API_KEY"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q should name %s", err, name)
		}
	}
	if strings.Contains(err.Error(), "GIST_ID") {
		t.Errorf("error %q should not name GIST_ID", err)
	}
}

func TestLoadStatsOnly(t *testing.T) {
	isolate(t)
	t.Setenv("WAKATIME_API_KEY", "waka-key")

	cfg, err := LoadStatsOnly()
	if err != nil {
		t.Fatalf("LoadStatsOnly() failed: %v", err)
	}
	if cfg.WakaTimeAPIKey != "waka-key" || cfg.GistID != "" {
		t.Errorf("unexpected config: key=%q gist=%q", cfg.WakaTimeAPIKey, cfg.GistID)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should still require GIST_ID and GH_TOKEN")
	}
}

func TestLoadStatsOnly_MissingKey(t *testing.T) {
	isolate(t)
	setRequired(t)
	t.Setenv("WAKATIME_API_KEY", "")

	_, err := LoadStatsOnly()
	if err == nil || !strings.Contains(err.Error(), "WAKATIME_API_KEY") {
		t.Errorf("LoadStatsOnly() error = %v, want WAKATIME_API_KEY named", err)
	}
}

func TestLoad_WithEnvFile(t *testing.T) {
	tmpDir := isolate(t)
	content := "GIST_ID=env-gist\nGH_TOKEN=env-gh\nWAKATIME_API_KEY=env-waka\nHTTP_TIMEOUT=5s\n"
	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	// godotenv does not override variables that are already set
	for _, key := range []string{"GIST_ID", "GH_TOKEN", "WAKATIME_API_KEY", "HTTP_TIMEOUT"} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.GistID != "env-gist" {
		t.Errorf("GistID = %q, want env-gist", cfg.GistID)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v, want 5s", cfg.HTTPTimeout)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	tmpDir := isolate(t)
	setRequired(t)

	path := filepath.Join(tmpDir, "config.toml")
	content := `
title = "Weekly Go"

[[merge]]
source = "Other"
target = "Go"

[[merge]]
source = "HCL"
target = "Terraform"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv("WAKABOX_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Title != "Weekly Go" {
		t.Errorf("Title = %q, want Weekly Go", cfg.Title)
	}
	if len(cfg.MergeRules) != 2 {
		t.Fatalf("expected 2 merge rules, got %d", len(cfg.MergeRules))
	}
	if cfg.MergeRules[1].Source != "HCL" || cfg.MergeRules[1].Target != "Terraform" {
		t.Errorf("second rule = %+v", cfg.MergeRules[1])
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("Missing", func(t *testing.T) {
		fc, err := LoadFile(filepath.Join(tmpDir, "nope.toml"))
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if fc.Title != nil || fc.Merge != nil {
			t.Errorf("expected empty FileConfig, got %+v", fc)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		path := filepath.Join(tmpDir, "bad.toml")
		if err := os.WriteFile(path, []byte("title = "), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Error("LoadFile() should fail on invalid TOML")
		}
	})

	t.Run("IncompleteRule", func(t *testing.T) {
		path := filepath.Join(tmpDir, "rule.toml")
		if err := os.WriteFile(path, []byte("[[merge]]\nsource = \"Other\"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Error("LoadFile() should reject a rule without target")
		}
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/xdg-test", "wakabox", "config.toml") {
		t.Errorf("DefaultConfigPath() = %q", got)
	}
}
