// Package nautobot provides a rate-limited client for the Nautobot REST API.
// It covers read-only IPAM retrieval: IP addresses and prefixes with
// filtering, item lookup by ID, free-text search, and a connectivity probe.
package nautobot

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the maximum number of requests per rate window
	DefaultRateLimit = 100

	// RateWindow is the sliding window over which the rate limit applies
	RateWindow = 60 * time.Second

	// Environment variable names
	envURL       = "NAUTOBOT_URL"
	envToken     = "NAUTOBOT_TOKEN" // #nosec G101 -- env var name, not a credential
	envVerifySSL = "NAUTOBOT_VERIFY_SSL"
	envTimeout   = "NAUTOBOT_TIMEOUT"
	envRateLimit = "NAUTOBOT_RATE_LIMIT"
)

// Config holds Nautobot connection settings. It is constructed once at
// startup and never mutated afterwards.
type Config struct {
	// URL is the Nautobot base URL (e.g. https://nautobot.example.com)
	URL string `yaml:"url"`

	// Token is the Nautobot API token, sent as "Authorization: Token <token>"
	Token string `yaml:"token"`

	// VerifySSL controls TLS certificate verification (default true)
	VerifySSL bool `yaml:"verify_ssl"`

	// Timeout for each API request
	Timeout time.Duration `yaml:"timeout"`

	// RateLimit is the maximum number of requests per RateWindow
	RateLimit int `yaml:"rate_limit"`
}

// DefaultConfig returns a Config with defaults applied and no endpoint set.
func DefaultConfig() *Config {
	return &Config{
		VerifySSL: true,
		Timeout:   DefaultTimeout,
		RateLimit: DefaultRateLimit,
	}
}

// LoadConfig loads configuration from environment variables. The result is
// not validated; callers apply any overrides and then call Validate.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides layers set environment variables over cfg. Unparseable
// boolean or numeric values are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envURL); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv(envToken); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv(envVerifySSL); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.VerifySSL = b
		}
	}
	if t := os.Getenv(envTimeout); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}
	if r := os.Getenv(envRateLimit); r != "" {
		if n, err := strconv.Atoi(r); err == nil && n > 0 {
			cfg.RateLimit = n
		}
	}
}

// LoadConfigFile merges settings from a YAML file over the defaults.
// Environment variables still take precedence over file values. As with
// LoadConfig, the result is not validated.
func LoadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Environment overrides the file
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Validate checks that required fields are present and sane.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("%s is required", envURL)
	}
	if !strings.HasPrefix(c.URL, "http://") && !strings.HasPrefix(c.URL, "https://") {
		return fmt.Errorf("nautobot URL must start with http:// or https://, got %s", c.URL)
	}
	if c.Token == "" {
		return fmt.Errorf("%s is required", envToken)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be positive, got %d", c.RateLimit)
	}
	return nil
}

// BaseURL returns the configured URL without any trailing slashes.
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.URL, "/")
}

// APIBase returns the root of the REST API, derived from the base URL.
func (c *Config) APIBase() string {
	return c.BaseURL() + "/api"
}
