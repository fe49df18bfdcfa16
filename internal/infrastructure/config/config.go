package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	CORS   CORSConfig   `yaml:"cors"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig represents HTTP server settings
type ServerConfig struct {
	Addr          string        `yaml:"addr"`
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`
}

// CORSConfig represents cross-origin settings for browser clients
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// AuthConfig represents API authentication settings.
// An empty token disables auth entirely.
type AuthConfig struct {
	Token string `yaml:"token"`
}

// LogConfig represents request logging settings
type LogConfig struct {
	Requests bool `yaml:"requests"`
}

// Default returns the configuration used when no file is supplied
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          ":8080",
			ShutdownGrace: 10 * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		},
		Log: LogConfig{
			Requests: true,
		},
	}
}

// Load loads configuration from a YAML file with env overrides.
// An empty path yields the defaults (still subject to env overrides).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.loadEnvOverrides()

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.ShutdownGrace <= 0 {
		cfg.Server.ShutdownGrace = 10 * time.Second
	}

	return cfg, nil
}

// loadEnvOverrides applies environment variable overrides on top of the
// file-based configuration
func (c *Config) loadEnvOverrides() {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if token := os.Getenv("API_TOKEN"); token != "" {
		c.Auth.Token = token
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		parts := strings.Split(origins, ",")
		allowed := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				allowed = append(allowed, trimmed)
			}
		}
		c.CORS.AllowedOrigins = allowed
	}
}
