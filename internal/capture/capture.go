// Package capture drives a headless browser to render a page and produce a
// PNG screenshot. Backends are pluggable; chromedp is the default, with a
// playwright backend available for environments that prefer a managed driver.
package capture

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrInvalidURL means the target is not an absolute http/https URL.
	ErrInvalidURL = errors.New("invalid url")

	// ErrMissingDimensions means neither a preset nor explicit width/height
	// produced a viewport size.
	ErrMissingDimensions = errors.New("missing viewport dimensions")

	// ErrNavigation covers network and DNS failures while loading the page.
	ErrNavigation = errors.New("navigation failed")

	// ErrTimeout means the page did not finish loading within the deadline.
	ErrTimeout = errors.New("page load timed out")

	// ErrBrowserLaunch means the headless browser could not be started.
	ErrBrowserLaunch = errors.New("browser launch failed")
)

// Request describes a single screenshot capture.
type Request struct {
	// URL is the absolute http/https address of the page to capture.
	URL string

	// Width and Height are the viewport size in pixels.
	Width  int
	Height int

	// FullPage captures the entire scrollable content height instead of
	// just the visible viewport.
	FullPage bool

	// Timeout bounds browser launch plus navigation plus capture.
	// Zero means the backend's configured default.
	Timeout time.Duration

	// Wait is an extra settle delay after the page loads, for late-running
	// scripts and animations. Zero means the backend's configured default.
	Wait time.Duration
}

// Validate checks the request before any browser is launched.
func (r *Request) Validate() error {
	u, err := url.Parse(r.URL)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidURL, r.URL, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if (scheme != "http" && scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, r.URL)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: width=%d height=%d", ErrMissingDimensions, r.Width, r.Height)
	}
	return nil
}

// Result is the outcome of a successful capture.
type Result struct {
	// Image is the PNG-encoded screenshot.
	Image []byte

	// Title is the document title after load, when the backend exposes it.
	Title string

	// HTML is the rendered document markup, used for metadata extraction.
	HTML string

	// Elapsed is the wall time spent capturing.
	Elapsed time.Duration
}

// Capturer renders pages into screenshots. Each Capture owns its browser
// session for the duration of the call and releases it before returning.
type Capturer interface {
	Capture(ctx context.Context, req *Request) (*Result, error)

	Close() error
}
