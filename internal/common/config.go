// Package common provides shared utilities for TTYF
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Upstream API hosts per environment.
const (
	SandboxBaseURL    = "https://sandbox.plaid.com"
	ProductionBaseURL = "https://production.plaid.com"
)

// Config holds all configuration for TTYF
type Config struct {
	Environment string         `toml:"environment"` // "sandbox" or "production"
	Registry    RegistryConfig `toml:"registry"`
	Clients     ClientsConfig  `toml:"clients"`
	Logging     LoggingConfig  `toml:"logging"`
}

// RegistryConfig locates the connection registry file.
type RegistryConfig struct {
	Path string `toml:"path"`
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Plaid PlaidConfig `toml:"plaid"`
}

// PlaidConfig holds banking API configuration. Secrets are normally
// supplied through the environment, not the config file.
type PlaidConfig struct {
	BaseURL   string `toml:"base_url"`
	ClientID  string `toml:"client_id"`
	Secret    string `toml:"secret"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *PlaidConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// IsProduction reports whether the production upstream environment is
// selected.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "prod") || strings.EqualFold(c.Environment, "production")
}

// ResolveBaseURL returns the configured base URL, or the host implied by
// the environment when none is set.
func (c *Config) ResolveBaseURL() string {
	if c.Clients.Plaid.BaseURL != "" {
		return c.Clients.Plaid.BaseURL
	}
	if c.IsProduction() {
		return ProductionBaseURL
	}
	return SandboxBaseURL
}

// DefaultRegistryPath returns the default connection registry location,
// shared with the companion CLI.
func DefaultRegistryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("ttyf", "plaid_connections.json")
	}
	return filepath.Join(home, "ttyf", "plaid_connections.json")
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "sandbox",
		Registry: RegistryConfig{
			Path: DefaultRegistryPath(),
		},
		Clients: ClientsConfig{
			Plaid: PlaidConfig{
				RateLimit: 5,
				Timeout:   "30s",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
// The secret variable is selected by environment, matching the companion
// CLI's conventions.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("ENV"); env != "" {
		config.Environment = env
	}

	if path := os.Getenv("TTYF_REGISTRY_PATH"); path != "" {
		config.Registry.Path = path
	}

	if level := os.Getenv("TTYF_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if clientID := os.Getenv("PLAID_CLIENT_ID"); clientID != "" {
		config.Clients.Plaid.ClientID = clientID
	}

	secretVar := "SANDBOX_PLAID_SECRET_KEY"
	if config.IsProduction() {
		secretVar = "PROD_PLAID_SECRET_KEY"
	}
	if secret := os.Getenv(secretVar); secret != "" {
		config.Clients.Plaid.Secret = secret
	}

	if rl := os.Getenv("PLAID_RATE_LIMIT"); rl != "" {
		if n, err := strconv.Atoi(rl); err == nil && n > 0 {
			config.Clients.Plaid.RateLimit = n
		}
	}
}

// Validate checks that the client credentials required for upstream
// calls are present.
func (c *Config) Validate() error {
	if c.Clients.Plaid.ClientID == "" || c.Clients.Plaid.Secret == "" {
		return fmt.Errorf("plaid client_id and secret must be set (environment %s)", c.Environment)
	}
	return nil
}
