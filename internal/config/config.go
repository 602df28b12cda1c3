// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for the simulated payment and UI timing knobs: a two second
// gateway round trip with a 90% success rate, a 300ms donation modal close
// animation and a two second copy toast.
const (
	DefaultSuccessRate  = 0.9
	DefaultLatency      = 2 * time.Second
	DefaultModalClose   = 300 * time.Millisecond
	DefaultToastVisible = 2 * time.Second
	DefaultToastFade    = 300 * time.Millisecond
)

// Config holds all configuration for the application.
type Config struct {
	PrefsPath          string
	LogLevel           string
	PaymentSuccessRate float64
	PaymentLatency     time.Duration
	ModalCloseDelay    time.Duration
	ToastVisible       time.Duration
	ToastFade          time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		PrefsPath:          os.Getenv("PREFS_PATH"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		PaymentSuccessRate: DefaultSuccessRate,
		PaymentLatency:     DefaultLatency,
		ModalCloseDelay:    DefaultModalClose,
		ToastVisible:       DefaultToastVisible,
		ToastFade:          DefaultToastFade,
	}

	if cfg.PrefsPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.PrefsPath = filepath.Join(home, ".donate4khmer", "prefs.json")
		} else {
			cfg.PrefsPath = filepath.Join(".", "prefs.json")
		}
	}

	if rateStr := os.Getenv("PAYMENT_SUCCESS_RATE"); rateStr != "" {
		if rate, err := strconv.ParseFloat(strings.TrimSpace(rateStr), 64); err == nil {
			cfg.PaymentSuccessRate = rate
		}
	}

	cfg.PaymentLatency = durationFromMillisEnv("PAYMENT_LATENCY_MS", cfg.PaymentLatency)
	cfg.ModalCloseDelay = durationFromMillisEnv("MODAL_CLOSE_MS", cfg.ModalCloseDelay)
	cfg.ToastVisible = durationFromMillisEnv("TOAST_VISIBLE_MS", cfg.ToastVisible)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// durationFromMillisEnv reads a millisecond count from the environment,
// keeping the fallback on absent or unparseable values.
func durationFromMillisEnv(key string, fallback time.Duration) time.Duration {
	msStr := os.Getenv(key)
	if msStr == "" {
		return fallback
	}
	ms, err := strconv.Atoi(strings.TrimSpace(msStr))
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

// validate checks that all configuration values are usable.
func (c *Config) validate() error {
	var errs []string

	if c.PaymentSuccessRate < 0 || c.PaymentSuccessRate > 1 {
		errs = append(errs, fmt.Sprintf("PAYMENT_SUCCESS_RATE must be between 0 and 1, got %v", c.PaymentSuccessRate))
	}

	if c.PrefsPath == "" {
		errs = append(errs, "PREFS_PATH must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
