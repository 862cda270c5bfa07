package app

import (
	"github.com/infractura/screenshot-control/internal/capture"
)

// Config contains the runtime configuration the service needs.
type Config struct {
	// CaptureCfg configures the browser backend.
	CaptureCfg capture.Config

	// StorageRoot is the base path for the history database.
	StorageRoot string

	// DefaultPreset is used when a request names neither a preset nor
	// explicit dimensions through an adapter that has a default.
	DefaultPreset string
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		CaptureCfg:    capture.DefaultConfig(),
		StorageRoot:   "~/.config/screenshot-control",
		DefaultPreset: "desktop",
	}
}
