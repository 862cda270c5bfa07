package capture

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/infractura/screenshot-control/internal/logging"
)

// PlaywrightClient captures screenshots through the playwright driver. The
// driver and browser are started per capture and torn down before the call
// returns, so a failed request never leaks a session.
type PlaywrightClient struct {
	cfg    Config
	logger logging.Logger
}

// NewPlaywrightClient creates the playwright backend. It assumes the
// playwright driver has been installed (`playwright install chromium`).
func NewPlaywrightClient(cfg Config, logger logging.Logger) *PlaywrightClient {
	if logger == nil {
		logger = logging.NewStdoutLogger("capture")
	}
	return &PlaywrightClient{
		cfg:    cfg,
		logger: logger.With(logging.Field{Key: "backend", Value: BackendPlaywright}),
	}
}

// Capture implements Capturer.
func (p *PlaywrightClient) Capture(ctx context.Context, req *Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	timeout := p.cfg.timeoutFor(req)
	wait := p.cfg.waitFor(req)
	start := time.Now()

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: starting playwright: %v", ErrBrowserLaunch, err)
	}
	defer pw.Stop()

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(p.cfg.Headless),
	}
	if p.cfg.ExecPath != "" {
		launchOpts.ExecutablePath = playwright.String(p.cfg.ExecPath)
	}
	browser, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("%w: creating page: %v", ErrBrowserLaunch, err)
	}
	defer page.Close()

	if err := page.SetViewportSize(req.Width, req.Height); err != nil {
		return nil, fmt.Errorf("setting viewport size: %w", err)
	}

	// Caller cancellation closes the page, which unblocks any pending
	// navigation inside the driver.
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			page.Close()
		case <-done:
		}
	}()
	defer close(done)

	if _, err := page.Goto(req.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(timeout.Milliseconds())),
	}); err != nil {
		return nil, classifyPlaywrightErr(err, req.URL, timeout)
	}

	if wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	fullPage := req.FullPage
	if fullPage {
		// Same clamp policy as the chromedp backend: documents taller than
		// the canvas limit fall back to a fixed-height viewport capture.
		if v, err := page.Evaluate(docHeightJS); err == nil {
			if h, ok := asInt64(v); ok && h > p.cfg.maxHeight() {
				p.logger.Warn("full-page height clamped",
					logging.Field{Key: "document_height", Value: h},
					logging.Field{Key: "max_height", Value: p.cfg.maxHeight()})
				if err := page.SetViewportSize(req.Width, int(p.cfg.maxHeight())); err != nil {
					return nil, fmt.Errorf("resizing clamped viewport: %w", err)
				}
				fullPage = false
			}
		}
	}

	img, err := page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(fullPage),
		Type:     playwright.ScreenshotTypePng,
	})
	if err != nil {
		return nil, classifyPlaywrightErr(err, req.URL, timeout)
	}

	title, _ := page.Title()
	html, _ := page.Content()

	elapsed := time.Since(start)
	p.logger.Info("captured",
		logging.Field{Key: "url", Value: req.URL},
		logging.Field{Key: "bytes", Value: len(img)},
		logging.Field{Key: "elapsed", Value: elapsed.String()})

	return &Result{
		Image:   img,
		Title:   title,
		HTML:    html,
		Elapsed: elapsed,
	}, nil
}

// Close implements Capturer. The playwright backend holds no long-lived
// resources between captures.
func (p *PlaywrightClient) Close() error { return nil }

// asInt64 converts the dynamic result of page.Evaluate into an int64.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

// classifyPlaywrightErr maps playwright failures onto the package error kinds.
func classifyPlaywrightErr(err error, url string, timeout time.Duration) error {
	msg := err.Error()
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		strings.Contains(msg, "Timeout") && strings.Contains(msg, "exceeded"):
		return fmt.Errorf("%w: %q after %s", ErrTimeout, url, timeout)
	case strings.Contains(msg, "net::ERR"),
		strings.Contains(msg, "NS_ERROR"):
		return fmt.Errorf("%w: %q: %v", ErrNavigation, url, err)
	}
	return fmt.Errorf("capture %q: %w", url, err)
}
