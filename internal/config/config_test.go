package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func TestGetDefaultOpener(t *testing.T) {
	expected := map[string]string{
		"darwin":  "open",
		"linux":   "xdg-open",
		"windows": "rundll32",
	}

	opener := getDefaultOpener()

	if expectedOpener, ok := expected[runtime.GOOS]; ok {
		if opener != expectedOpener {
			t.Errorf("getDefaultOpener() = %s, want %s for %s", opener, expectedOpener, runtime.GOOS)
		}
	} else if opener != "open" {
		t.Errorf("getDefaultOpener() = %s, want 'open' for unknown OS", opener)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Search.Endpoint != "http://localhost:5000" {
		t.Errorf("Search.Endpoint = %s, want http://localhost:5000", cfg.Search.Endpoint)
	}
	if cfg.Search.Path != "/api/search" {
		t.Errorf("Search.Path = %s, want /api/search", cfg.Search.Path)
	}
	if cfg.Search.HTTPTimeout != 0 {
		t.Errorf("Search.HTTPTimeout = %v, want 0 (no timeout)", cfg.Search.HTTPTimeout)
	}
	if cfg.UI.PageSize != 10 {
		t.Errorf("UI.PageSize = %d, want 10", cfg.UI.PageSize)
	}
	if cfg.UI.IntersectionThreshold != 0.1 {
		t.Errorf("UI.IntersectionThreshold = %v, want 0.1", cfg.UI.IntersectionThreshold)
	}
	if len(cfg.UI.DefaultPlatforms) != 1 || cfg.UI.DefaultPlatforms[0] != "leetcode" {
		t.Errorf("UI.DefaultPlatforms = %v, want [leetcode]", cfg.UI.DefaultPlatforms)
	}
	if cfg.Keys.Modifier != "ctrl" {
		t.Errorf("Keys.Modifier = %s, want 'ctrl'", cfg.Keys.Modifier)
	}
	if cfg.Browser.DefaultOpener == "" {
		t.Error("Browser.DefaultOpener should not be empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_DefaultConfig(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.UI.PageSize != 10 {
		t.Errorf("UI.PageSize = %d, want 10", cfg.UI.PageSize)
	}
	if cfg.Search.RateLimit != 5 {
		t.Errorf("Search.RateLimit = %v, want 5", cfg.Search.RateLimit)
	}
}

func TestLoad_FromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "test-config.toml")
	configContent := `
[search]
endpoint = "https://search.example.org"
http_timeout = "15s"
user_agent = "test-agent"

[ui]
page_size = 25
default_platforms = ["codeforces", "codechef"]

[ui.colors]
primary = "#FF0000"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Search.Endpoint != "https://search.example.org" {
		t.Errorf("Search.Endpoint = %s", cfg.Search.Endpoint)
	}
	if cfg.Search.HTTPTimeout != 15*time.Second {
		t.Errorf("Search.HTTPTimeout = %v, want 15s", cfg.Search.HTTPTimeout)
	}
	if cfg.Search.Path != "/api/search" {
		t.Errorf("Search.Path default lost: %s", cfg.Search.Path)
	}
	if cfg.UI.PageSize != 25 {
		t.Errorf("UI.PageSize = %d, want 25", cfg.UI.PageSize)
	}
	if cfg.UI.IntersectionThreshold != 0.1 {
		t.Errorf("UI.IntersectionThreshold default lost: %v", cfg.UI.IntersectionThreshold)
	}
	if len(cfg.UI.DefaultPlatforms) != 2 {
		t.Errorf("UI.DefaultPlatforms = %v", cfg.UI.DefaultPlatforms)
	}
	if cfg.UI.Colors.Primary != "#FF0000" {
		t.Errorf("UI.Colors.Primary = %s, want '#FF0000'", cfg.UI.Colors.Primary)
	}
	if cfg.UI.Colors.Muted != "#94A3B8" {
		t.Errorf("UI.Colors.Muted default lost: %s", cfg.UI.Colors.Muted)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.toml")
	if err := os.WriteFile(configPath, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ALGOSEARCH_SEARCH_ENDPOINT", "http://127.0.0.1:9999")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Search.Endpoint != "http://127.0.0.1:9999" {
		t.Errorf("Search.Endpoint = %s, want env override", cfg.Search.Endpoint)
	}
}

func TestLoad_Invalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(configPath, []byte("[ui]\npage_size = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("Load() should reject a zero page size")
	}
}

func TestSave(t *testing.T) {
	cfg := defaultConfig()
	cfg.Search.Endpoint = "https://saved.example.org"
	cfg.Search.HTTPTimeout = 45 * time.Second
	cfg.UI.PageSize = 7
	cfg.Keys.Modifier = "alt"

	savePath := filepath.Join(t.TempDir(), "nested", "saved-config.toml")
	if err := Save(cfg, savePath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(savePath)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}

	if loaded.Search.Endpoint != cfg.Search.Endpoint {
		t.Errorf("Loaded Search.Endpoint = %s, want %s", loaded.Search.Endpoint, cfg.Search.Endpoint)
	}
	if loaded.Search.HTTPTimeout != cfg.Search.HTTPTimeout {
		t.Errorf("Loaded Search.HTTPTimeout = %v, want %v", loaded.Search.HTTPTimeout, cfg.Search.HTTPTimeout)
	}
	if loaded.UI.PageSize != 7 {
		t.Errorf("Loaded UI.PageSize = %d, want 7", loaded.UI.PageSize)
	}
	if loaded.Keys.Modifier != "alt" {
		t.Errorf("Loaded Keys.Modifier = %s, want alt", loaded.Keys.Modifier)
	}
}

func TestGenerateDefaultConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "generated.toml")
	if err := GenerateDefaultConfig(configPath); err != nil {
		t.Fatalf("GenerateDefaultConfig() error = %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load generated config: %v", err)
	}
	if cfg.Keys.Bindings.ToggleCodeForces != "f" {
		t.Errorf("Generated config has ToggleCodeForces = %s, want 'f'", cfg.Keys.Bindings.ToggleCodeForces)
	}
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	if cfg.Search.UserAgent != "algosearch-test/1.0" {
		t.Errorf("TestConfig Search.UserAgent = %s", cfg.Search.UserAgent)
	}
	if cfg.Search.RateLimit != 0 {
		t.Errorf("TestConfig should not rate limit, got %v", cfg.Search.RateLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("TestConfig should validate: %v", err)
	}
}
