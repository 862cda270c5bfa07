// Package config resolves process-level configuration from the environment.
// All SCREENSHOT_* variables are read once at startup; per-package Config
// structs are derived from the result.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/infractura/screenshot-control/internal/capture"
)

// Environment variable names recognized at startup.
const (
	EnvHost        = "SCREENSHOT_HOST"
	EnvPort        = "SCREENSHOT_PORT"
	EnvTimeout     = "SCREENSHOT_TIMEOUT"
	EnvChromePath  = "SCREENSHOT_CHROME_PATH"
	EnvBackend     = "SCREENSHOT_BACKEND"
	EnvStorageRoot = "SCREENSHOT_STORAGE_ROOT"
)

// Config enumerates every recognized option and its default.
type Config struct {
	// Host and Port form the API server listen address.
	Host string
	Port int

	// Timeout is the default capture deadline.
	Timeout time.Duration

	// ChromePath points at a specific browser binary; empty means discovery.
	ChromePath string

	// Backend selects the capture implementation.
	Backend string

	// StorageRoot holds the history database.
	StorageRoot string
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		Host:        "0.0.0.0",
		Port:        8765,
		Timeout:     30 * time.Second,
		Backend:     capture.BackendChromedp,
		StorageRoot: "~/.config/screenshot-control",
	}
}

// FromEnv loads .env (if present) and overlays SCREENSHOT_* variables on the
// defaults. It is validated once here; callers can trust the result.
func FromEnv() (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("invalid %s %q", EnvPort, v)
		}
		cfg.Port = port
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs < 1 {
			return Config{}, fmt.Errorf("invalid %s %q", EnvTimeout, v)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	if v := os.Getenv(EnvChromePath); v != "" {
		cfg.ChromePath = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv(EnvStorageRoot); v != "" {
		cfg.StorageRoot = v
	}

	return cfg, nil
}

// ListenAddr formats the host and port for net/http.
func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CaptureConfig derives the capture backend configuration.
func (c Config) CaptureConfig() capture.Config {
	cc := capture.DefaultConfig()
	cc.Backend = c.Backend
	cc.ExecPath = c.ChromePath
	cc.DefaultTimeout = c.Timeout
	return cc
}
