// Package screenshotcontrol captures screenshots of web pages with a headless
// browser. It is the embedding surface of the screenshot-control tool: one
// call resolves a viewport preset, drives the browser, and returns the PNG
// either as bytes, base64, or a file on disk.
//
//	result, err := screenshotcontrol.Get(ctx, "https://example.com",
//		screenshotcontrol.WithPreset("phone"),
//		screenshotcontrol.WithOutputPath("/tmp/captures/"))
package screenshotcontrol

import (
	"context"
	"sync"
	"time"

	"github.com/infractura/screenshot-control/internal/app"
	"github.com/infractura/screenshot-control/internal/capture"
	"github.com/infractura/screenshot-control/internal/logging"
	"github.com/infractura/screenshot-control/internal/output"
	"github.com/infractura/screenshot-control/internal/preset"
)

// Preset is a named, predefined viewport size.
type Preset = preset.Preset

// Presets returns the built-in viewport presets.
func Presets() []Preset { return preset.All() }

// CaptureResult is the outcome of Get. Image always holds the PNG bytes;
// SavedPath or Base64 is set depending on whether an output path was given.
type CaptureResult struct {
	Image     []byte
	SavedPath string
	Base64    string
	Title     string
}

type options struct {
	preset     string
	width      int
	height     int
	fullPage   bool
	outputPath string
	timeout    time.Duration
	wait       time.Duration
	backend    string
	chromePath string
	logger     logging.Logger
}

// Option customizes a Get call.
type Option func(*options)

// WithPreset selects a named viewport preset (default: desktop).
func WithPreset(name string) Option { return func(o *options) { o.preset = name } }

// WithSize sets an explicit viewport size, overriding any preset.
func WithSize(width, height int) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithFullPage captures the entire scrollable content height.
func WithFullPage() Option { return func(o *options) { o.fullPage = true } }

// WithOutputPath writes the PNG to a file path or directory instead of
// returning base64.
func WithOutputPath(path string) Option { return func(o *options) { o.outputPath = path } }

// WithTimeout bounds the capture.
func WithTimeout(d time.Duration) Option { return func(o *options) { o.timeout = d } }

// WithWait sets the settle delay after page load.
func WithWait(d time.Duration) Option { return func(o *options) { o.wait = d } }

// WithBackend selects the capture backend (chromedp or playwright).
func WithBackend(name string) Option { return func(o *options) { o.backend = name } }

// WithChromePath points the backend at a specific browser binary.
func WithChromePath(path string) Option { return func(o *options) { o.chromePath = path } }

// WithLogger routes library logs somewhere other than stdout.
func WithLogger(l logging.Logger) Option { return func(o *options) { o.logger = l } }

var registerOnce sync.Once

// Get captures a screenshot of url. Without options it captures the desktop
// preset and returns the image as bytes plus base64. The browser session is
// owned by this call and released before it returns.
func Get(ctx context.Context, url string, opts ...Option) (*CaptureResult, error) {
	o := options{preset: "desktop"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.width > 0 && o.height > 0 {
		o.preset = ""
	}

	registerOnce.Do(capture.RegisterDefaultBackends)

	captureCfg := capture.DefaultConfig()
	if o.backend != "" {
		captureCfg.Backend = o.backend
	}
	captureCfg.ExecPath = o.chromePath
	if o.timeout > 0 {
		captureCfg.DefaultTimeout = o.timeout
	}

	logger := o.logger
	if logger == nil {
		logger = logging.NewStdoutLogger("library")
	}

	capturer, err := capture.NewCapturer(captureCfg, logger)
	if err != nil {
		return nil, err
	}
	defer capturer.Close()

	appCfg := app.DefaultConfig()
	appCfg.CaptureCfg = captureCfg
	svc := app.NewService(appCfg, capturer, nil, logger)

	mode := output.ModeBase64
	if o.outputPath != "" {
		mode = output.ModeFile
	}

	outcome, err := svc.Screenshot(ctx, app.Params{
		URL:        url,
		Preset:     o.preset,
		Width:      o.width,
		Height:     o.height,
		FullPage:   o.fullPage,
		Timeout:    o.timeout,
		Wait:       o.wait,
		Mode:       mode,
		OutputPath: o.outputPath,
	})
	if err != nil {
		return nil, err
	}

	return &CaptureResult{
		Image:     outcome.Image,
		SavedPath: outcome.SavedPath,
		Base64:    outcome.Base64,
		Title:     outcome.Title,
	}, nil
}
