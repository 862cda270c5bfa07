package capture

import (
	"fmt"

	"github.com/infractura/screenshot-control/internal/logging"
)

// RegisterDefaultBackends registers the chromedp and playwright backends.
// Call this from init() or early in main() to make backends available to
// NewCapturer.
func RegisterDefaultBackends() {
	RegisterBackend(BackendChromedp, func(cfg Config, logger logging.Logger) (Capturer, error) {
		c, err := NewChromeDPClient(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create chromedp client: %w", err)
		}
		return c, nil
	})

	RegisterBackend(BackendPlaywright, func(cfg Config, logger logging.Logger) (Capturer, error) {
		return NewPlaywrightClient(cfg, logger), nil
	})
}
