// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the settings shared by the API server and the CLI.
type Config struct {
	Addr              string
	ServiceName       string
	LogLevel          string
	DivisionPrecision int32
	ShutdownTimeout   time.Duration
}

// Default returns the settings used when no environment overrides exist.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ServiceName:       "go-chi-calculator",
		LogLevel:          "info",
		DivisionPrecision: 16,
		ShutdownTimeout:   5 * time.Second,
	}
}

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads configuration through getenv, starting from Default.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("CALC_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("OTEL_SERVICE_NAME"); v != "" {
		cfg.ServiceName = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := getenv("CALC_DIVISION_PRECISION"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("CALC_DIVISION_PRECISION: invalid value %q", v)
		}
		cfg.DivisionPrecision = int32(n)
	}

	if v := getenv("CALC_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALC_SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}
