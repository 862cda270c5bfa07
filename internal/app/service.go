// Package app wires the preset table, capture backend, output formatter and
// history store into the single screenshot operation every adapter calls.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/infractura/screenshot-control/internal/capture"
	"github.com/infractura/screenshot-control/internal/history"
	"github.com/infractura/screenshot-control/internal/logging"
	"github.com/infractura/screenshot-control/internal/metrics"
	"github.com/infractura/screenshot-control/internal/output"
	"github.com/infractura/screenshot-control/internal/pagemeta"
	"github.com/infractura/screenshot-control/internal/preset"
)

// Params describe one screenshot operation. Either Preset or both
// Width/Height must be set; explicit dimensions win.
type Params struct {
	URL      string
	Preset   string
	Width    int
	Height   int
	FullPage bool
	Timeout  time.Duration
	Wait     time.Duration

	// Mode and OutputPath control delivery; see the output package.
	Mode       output.Mode
	OutputPath string
}

// Outcome is the result of one screenshot operation.
type Outcome struct {
	// Image is always populated with the raw PNG bytes.
	Image []byte

	// SavedPath or Base64 is populated depending on Params.Mode.
	SavedPath string
	Base64    string

	// Title is the captured page title, when available.
	Title string

	Elapsed time.Duration
}

// Service owns a capture backend and an optional history store. It is safe
// for concurrent use; each capture owns its own browser session.
type Service struct {
	cfg      *Config
	capturer capture.Capturer
	history  *history.Store
	logger   logging.Logger
}

// NewService creates a Service. history may be nil (the CLI runs without it).
func NewService(cfg *Config, capturer capture.Capturer, store *history.Store, logger logging.Logger) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewStdoutLogger("service")
	}
	return &Service{
		cfg:      cfg,
		capturer: capturer,
		history:  store,
		logger:   logger,
	}
}

// ResolveDimensions applies the preset table to fill in the viewport size.
// Explicit width and height take precedence over the preset name.
func ResolveDimensions(presetName string, width, height int) (int, int, error) {
	if width > 0 && height > 0 {
		return width, height, nil
	}
	if presetName != "" {
		p, err := preset.Resolve(presetName)
		if err != nil {
			return 0, 0, err
		}
		return p.Width, p.Height, nil
	}
	return 0, 0, fmt.Errorf("%w: provide a preset or both width and height", capture.ErrMissingDimensions)
}

// Screenshot runs the full pipeline: resolve dimensions, capture, format,
// record. Validation failures surface before any browser is launched.
func (s *Service) Screenshot(ctx context.Context, p Params) (*Outcome, error) {
	width, height, err := ResolveDimensions(p.Preset, p.Width, p.Height)
	if err != nil {
		return nil, err
	}

	req := &capture.Request{
		URL:      p.URL,
		Width:    width,
		Height:   height,
		FullPage: p.FullPage,
		Timeout:  p.Timeout,
		Wait:     p.Wait,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res, err := s.capturer.Capture(ctx, req)
	metrics.ObserveCapture(s.cfg.CaptureCfg.Backend, elapsedOf(res), err)
	if err != nil {
		return nil, err
	}

	formatted, err := output.Format(res.Image, p.Mode, p.OutputPath, p.URL)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Image:     res.Image,
		SavedPath: formatted.SavedPath,
		Base64:    formatted.Base64,
		Title:     res.Title,
		Elapsed:   res.Elapsed,
	}

	s.record(ctx, p, req, res, formatted)
	return outcome, nil
}

// record writes a history entry. History is advisory; failures are logged
// and never fail the capture.
func (s *Service) record(ctx context.Context, p Params, req *capture.Request, res *capture.Result, formatted *output.Result) {
	if s.history == nil {
		return
	}
	meta := pagemeta.Extract(res.HTML)
	_, err := s.history.Record(ctx, history.Entry{
		URL:         p.URL,
		Preset:      p.Preset,
		Width:       req.Width,
		Height:      req.Height,
		FullPage:    p.FullPage,
		Title:       meta.Title,
		Description: meta.Description,
		SavedPath:   formatted.SavedPath,
		ByteSize:    len(res.Image),
	})
	if err != nil {
		s.logger.Warn("recording capture history",
			logging.Field{Key: "url", Value: p.URL},
			logging.Field{Key: "error", Value: err.Error()})
	}
}

// Close releases the capture backend.
func (s *Service) Close() {
	if s.capturer != nil {
		if err := s.capturer.Close(); err != nil {
			s.logger.Warn("closing capturer", logging.Field{Key: "error", Value: err.Error()})
		}
	}
}

func elapsedOf(res *capture.Result) time.Duration {
	if res == nil {
		return 0
	}
	return res.Elapsed
}
