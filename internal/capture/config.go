package capture

import "time"

// Backend names accepted by the factory.
const (
	BackendChromedp   = "chromedp"
	BackendPlaywright = "playwright"
)

// MaxCaptureHeight caps the emulated viewport height for full-page captures.
// Chromium refuses to rasterize past its canvas limit, so taller documents
// are clamped rather than failing the capture.
const MaxCaptureHeight = 16384

// Config contains the runtime options shared by capture backends.
type Config struct {
	// Backend selects the capture implementation; see BackendChromedp and
	// BackendPlaywright.
	Backend string

	// ExecPath points at a specific browser binary. Empty means the
	// backend's own discovery (PATH lookup, bundled driver).
	ExecPath string

	// Headless controls whether the browser runs without a window.
	Headless bool

	// DefaultTimeout bounds a capture when the request does not carry its
	// own deadline.
	DefaultTimeout time.Duration

	// SettleDelay is the default wait after page load before capturing.
	SettleDelay time.Duration

	// MaxHeight clamps full-page capture height; zero means MaxCaptureHeight.
	MaxHeight int
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Backend:        BackendChromedp,
		Headless:       true,
		DefaultTimeout: 30 * time.Second,
		SettleDelay:    2 * time.Second,
		MaxHeight:      MaxCaptureHeight,
	}
}

// maxHeight resolves the clamp, falling back to the package constant.
func (c Config) maxHeight() int64 {
	if c.MaxHeight > 0 {
		return int64(c.MaxHeight)
	}
	return MaxCaptureHeight
}

// timeoutFor resolves the effective deadline for a request.
func (c Config) timeoutFor(req *Request) time.Duration {
	if req.Timeout > 0 {
		return req.Timeout
	}
	if c.DefaultTimeout > 0 {
		return c.DefaultTimeout
	}
	return 30 * time.Second
}

// waitFor resolves the effective settle delay for a request.
func (c Config) waitFor(req *Request) time.Duration {
	if req.Wait > 0 {
		return req.Wait
	}
	return c.SettleDelay
}
