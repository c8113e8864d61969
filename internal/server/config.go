// Package server exposes spec.md §6.2's request/response envelope over
// HTTP as a supplemental long-running alternative to the one-shot CLI.
package server

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server's environment-derived settings.
type Config struct {
	ListenAddr     string
	LogLevel       string
	DefaultRuntime string
	GzipEnabled    bool
}

// LoadConfig reads a .env file if present (missing is not an error, the
// same convention the pack's gateway uses for local development) and then
// applies environment variables over struct defaults.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &Config{
		ListenAddr:     ":8080",
		LogLevel:       "info",
		DefaultRuntime: "goja",
		GzipEnabled:    true,
	}

	if v := os.Getenv("PLAYERPP_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("PLAYERPP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PLAYERPP_DEFAULT_RUNTIME"); v != "" {
		cfg.DefaultRuntime = v
	}
	if v := os.Getenv("PLAYERPP_GZIP"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		cfg.GzipEnabled = enabled
	}

	return cfg, nil
}
