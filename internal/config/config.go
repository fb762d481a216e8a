// Package config loads client configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/hrbuddy/hrms-go/internal/types"
)

// Config holds everything needed to construct a client from the environment.
type Config struct {
	BaseURL    string
	Token      string
	TokenFile  string
	Timeout    time.Duration
	MaxRetries int
	RetryWait  time.Duration
	LogLevel   string
	SentryDSN  string

	// RateLimit is requests per second; zero disables client-side limiting.
	RateLimit float64
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		BaseURL:    types.DefaultBaseURL,
		Timeout:    types.DefaultTimeout,
		MaxRetries: types.DefaultMaxRetries,
		RetryWait:  types.DefaultRetryWait,
		LogLevel:   "info",
	}
}

// Load reads configuration from the environment. When envFile is non-empty
// and exists, it is loaded first without overriding variables already set in
// the process environment.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg := Default()

	if v := os.Getenv("HRMS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("HRMS_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("HRMS_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}
	if err := overrideDuration("HRMS_TIMEOUT", &cfg.Timeout); err != nil {
		return Config{}, err
	}
	if err := overrideInt("HRMS_MAX_RETRIES", &cfg.MaxRetries); err != nil {
		return Config{}, err
	}
	if err := overrideDuration("HRMS_RETRY_WAIT", &cfg.RetryWait); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("HRMS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HRMS_SENTRY_DSN"); v != "" {
		cfg.SentryDSN = v
	}
	if err := overrideFloat("HRMS_RATE_LIMIT", &cfg.RateLimit); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// RetryConfig converts the retry fields to the transport's representation.
func (c Config) RetryConfig() *types.RetryConfig {
	return &types.RetryConfig{
		MaxRetries: c.MaxRetries,
		RetryWait:  c.RetryWait,
	}
}

func overrideDuration(key string, target *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("parse %s duration: %w", key, err)
	}
	*target = d
	return nil
}

func overrideInt(key string, target *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s int: %w", key, err)
	}
	*target = n
	return nil
}

func overrideFloat(key string, target *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("parse %s float: %w", key, err)
	}
	*target = f
	return nil
}
