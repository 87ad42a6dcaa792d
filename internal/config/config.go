package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	UI      UIConfig      `mapstructure:"ui"`
	Keys    KeyConfig     `mapstructure:"keys"`
	Log     LogConfig     `mapstructure:"log"`
	Browser BrowserConfig `mapstructure:"browser"`
}

type SearchConfig struct {
	Endpoint    string        `mapstructure:"endpoint"`
	Path        string        `mapstructure:"path"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
	RateLimit   float64       `mapstructure:"rate_limit"`
	Burst       int           `mapstructure:"burst"`
}

type UIConfig struct {
	PageSize              int      `mapstructure:"page_size"`
	IntersectionThreshold float64  `mapstructure:"intersection_threshold"`
	SentinelHeight        int      `mapstructure:"sentinel_height"`
	DefaultPlatforms      []string `mapstructure:"default_platforms"`
	PlatformsFile         string   `mapstructure:"platforms_file"`
	Colors                UIColors `mapstructure:"colors"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

type KeyConfig struct {
	Modifier string      `mapstructure:"modifier"`
	Bindings KeyBindings `mapstructure:"bindings"`
}

type KeyBindings struct {
	Quit             string `mapstructure:"quit"`
	Focus            string `mapstructure:"focus"`
	ToggleLeetCode   string `mapstructure:"toggle_leetcode"`
	ToggleCodeForces string `mapstructure:"toggle_codeforces"`
	ToggleCodeChef   string `mapstructure:"toggle_codechef"`
	Back             string `mapstructure:"back"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type BrowserConfig struct {
	DefaultOpener string `mapstructure:"default_opener"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Search: SearchConfig{
			Endpoint:    "http://localhost:5000",
			Path:        "/api/search",
			HTTPTimeout: 0,
			UserAgent:   "algosearch/1.0 (https://github.com/pders01/algosearch)",
			RateLimit:   5,
			Burst:       1,
		},
		UI: UIConfig{
			PageSize:              10,
			IntersectionThreshold: 0.1,
			SentinelHeight:        2,
			DefaultPlatforms:      []string{"leetcode"},
			Colors: UIColors{
				Primary:   "#60A5FA",
				Secondary: "#A78BFA",
				Accent:    "#22C55E",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#F87171",
				Success:   "#4ADE80",
			},
		},
		Keys: KeyConfig{
			Modifier: "ctrl",
			Bindings: KeyBindings{
				Quit:             "c",
				Focus:            "tab",
				ToggleLeetCode:   "l",
				ToggleCodeForces: "f",
				ToggleCodeChef:   "k",
				Back:             "esc",
			},
		},
		Log: LogConfig{
			Level: "off",
			File:  filepath.Join(homeDir, ".algosearch", "algosearch.log"),
		},
		Browser: BrowserConfig{
			DefaultOpener: getDefaultOpener(),
		},
	}
}

func getDefaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "linux":
		return "xdg-open"
	case "windows":
		return "rundll32"
	default:
		return "open"
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	for key, value := range settings(defaultConfig()) {
		v.SetDefault(key, value)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "algosearch")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("ALGOSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	expandPaths(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings the result pipeline cannot work with.
func (c *Config) Validate() error {
	if c.UI.PageSize <= 0 {
		return fmt.Errorf("ui.page_size must be positive, got %d", c.UI.PageSize)
	}
	if c.UI.IntersectionThreshold <= 0 || c.UI.IntersectionThreshold > 1 {
		return fmt.Errorf("ui.intersection_threshold must be in (0, 1], got %v", c.UI.IntersectionThreshold)
	}
	if c.UI.SentinelHeight <= 0 {
		return fmt.Errorf("ui.sentinel_height must be positive, got %d", c.UI.SentinelHeight)
	}
	if c.Search.Burst <= 0 {
		return fmt.Errorf("search.burst must be positive, got %d", c.Search.Burst)
	}
	if c.Search.RateLimit < 0 {
		return fmt.Errorf("search.rate_limit must not be negative")
	}
	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

// expandPaths expands all paths in the config
func expandPaths(cfg *Config) {
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.UI.PlatformsFile = expandPath(cfg.UI.PlatformsFile)
}

// settings flattens cfg into dotted viper keys. Durations are written as
// strings for TOML readability.
func settings(cfg *Config) map[string]interface{} {
	return map[string]interface{}{
		"search.endpoint":     cfg.Search.Endpoint,
		"search.path":         cfg.Search.Path,
		"search.http_timeout": cfg.Search.HTTPTimeout.String(),
		"search.user_agent":   cfg.Search.UserAgent,
		"search.rate_limit":   cfg.Search.RateLimit,
		"search.burst":        cfg.Search.Burst,

		"ui.page_size":              cfg.UI.PageSize,
		"ui.intersection_threshold": cfg.UI.IntersectionThreshold,
		"ui.sentinel_height":        cfg.UI.SentinelHeight,
		"ui.default_platforms":      cfg.UI.DefaultPlatforms,
		"ui.platforms_file":         cfg.UI.PlatformsFile,
		"ui.colors.primary":         cfg.UI.Colors.Primary,
		"ui.colors.secondary":       cfg.UI.Colors.Secondary,
		"ui.colors.accent":          cfg.UI.Colors.Accent,
		"ui.colors.text":            cfg.UI.Colors.Text,
		"ui.colors.muted":           cfg.UI.Colors.Muted,
		"ui.colors.error":           cfg.UI.Colors.Error,
		"ui.colors.success":         cfg.UI.Colors.Success,

		"keys.modifier":                   cfg.Keys.Modifier,
		"keys.bindings.quit":              cfg.Keys.Bindings.Quit,
		"keys.bindings.focus":             cfg.Keys.Bindings.Focus,
		"keys.bindings.toggle_leetcode":   cfg.Keys.Bindings.ToggleLeetCode,
		"keys.bindings.toggle_codeforces": cfg.Keys.Bindings.ToggleCodeForces,
		"keys.bindings.toggle_codechef":   cfg.Keys.Bindings.ToggleCodeChef,
		"keys.bindings.back":              cfg.Keys.Bindings.Back,

		"log.level": cfg.Log.Level,
		"log.file":  cfg.Log.File,

		"browser.default_opener": cfg.Browser.DefaultOpener,
	}
}

func Save(config *Config, path string) error {
	v := viper.New()

	for key, value := range settings(config) {
		v.Set(key, value)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
