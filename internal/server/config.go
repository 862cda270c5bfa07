package server

import (
	"github.com/infractura/screenshot-control/internal/app"
	"github.com/infractura/screenshot-control/internal/capture"
	"github.com/infractura/screenshot-control/internal/logging"
)

// Config configures the API server.
type Config struct {
	// ListenAddr is the HTTP listen address, e.g. ":8765".
	ListenAddr string

	// AppConfig configures the underlying service; nil means defaults.
	AppConfig *app.Config

	// Capturer overrides the backend chosen by AppConfig. Tests inject a
	// dummy here; production leaves it nil and the factory decides.
	Capturer capture.Capturer

	// Logger receives server logs; nil means a stdout logger.
	Logger logging.Logger

	// DisableHistory skips the SQLite history store entirely.
	DisableHistory bool
}
