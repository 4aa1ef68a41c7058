package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type BackendConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Voucher struct {
		Issuer string `yaml:"issuer"`
	} `yaml:"voucher"`
}

// Load reads config/config.yaml, with a .env file (if present) and the
// BACKEND_URL / PORT environment variables taking precedence.
func Load() (*Config, error) {
	// Missing .env is fine; env vars may come from the deployment instead.
	_ = godotenv.Load()

	f, err := os.Open("config/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("open config.yaml: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config.yaml: %w", err)
	}

	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT must be numeric: %w", err)
		}
		cfg.Server.Port = port
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend base_url is required")
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Backend.TimeoutSeconds <= 0 {
		cfg.Backend.TimeoutSeconds = 10
	}
	return &cfg, nil
}

// BackendTimeout returns the configured HTTP client timeout.
func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}
