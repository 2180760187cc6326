// Package config holds the run settings and their defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors
var (
	ErrMissingStartURL   = errors.New("start_url is required")
	ErrMissingOutputFile = errors.New("output_file is required")
	ErrInvalidTimeout    = errors.New("browser.wait_timeout must be positive")
	ErrInvalidExpansions = errors.New("max_expansions must be non-negative")
	ErrInvalidCacheTTL   = errors.New("cache.ttl must be non-negative")
)

// Config is the complete run configuration
type Config struct {
	StartURL      string        `yaml:"start_url"`
	OutputFile    string        `yaml:"output_file"`
	MaxExpansions int           `yaml:"max_expansions"` // 0 keeps clicking until the list is exhausted
	Browser       BrowserConfig `yaml:"browser"`
	Cache         CacheConfig   `yaml:"cache"`
	Server        ServerConfig  `yaml:"server"`
}

// BrowserConfig controls the Chrome instance
type BrowserConfig struct {
	Headless    bool          `yaml:"headless"`
	UserAgent   string        `yaml:"user_agent"`
	WaitTimeout time.Duration `yaml:"wait_timeout"`
}

// CacheConfig controls memoization of profile lookups
type CacheConfig struct {
	RedisAddr string        `yaml:"redis_addr"` // empty disables caching
	TTL       time.Duration `yaml:"ttl"`
}

// ServerConfig controls `serve`
type ServerConfig struct {
	Port string `yaml:"port"`
}

// Default returns the settings the tool runs with when no file is given
func Default() *Config {
	return &Config{
		StartURL:   "https://www.proff.no/selskap/strise-as/trondheim/internettdesign-og-programmering/IF6R01G0C2C/",
		OutputFile: "investor_list.md",
		Browser: BrowserConfig{
			Headless:    true,
			UserAgent:   "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36",
			WaitTimeout: 10 * time.Second,
		},
		Cache: CacheConfig{
			TTL: 12 * time.Hour,
		},
		Server: ServerConfig{
			Port: "8000",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for unusable values
func (c *Config) Validate() error {
	if c.StartURL == "" {
		return ErrMissingStartURL
	}

	if c.OutputFile == "" {
		return ErrMissingOutputFile
	}

	if c.Browser.WaitTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxExpansions < 0 {
		return ErrInvalidExpansions
	}

	if c.Cache.TTL < 0 {
		return ErrInvalidCacheTTL
	}

	return nil
}
