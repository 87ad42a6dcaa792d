package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.Search.HTTPTimeout = 5 * time.Second
	cfg.Search.UserAgent = "algosearch-test/1.0"
	cfg.Search.RateLimit = 0 // unlimited
	cfg.Log = LogConfig{Level: "off"}
	cfg.Browser.DefaultOpener = "true"
	return cfg
}
