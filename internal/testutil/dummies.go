// Package testutil provides shared test doubles for use across package
// tests. All dummies implement the corresponding interfaces from the
// production code, allowing injection into components under test without
// real I/O or side effects.
package testutil

import (
	"context"
	"sync"

	"github.com/infractura/screenshot-control/internal/capture"
	"github.com/infractura/screenshot-control/internal/logging"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Debugs = append(l.Debugs, msg)
}

func (l *DummyLogger) Info(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, msg)
}

func (l *DummyLogger) Warn(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Warns = append(l.Warns, msg)
}

func (l *DummyLogger) Error(msg string, fields ...logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, msg)
}

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// ─── Capturer ──────────────────────────────────────────────────────────

// tinyPNG is a valid 1x1 transparent PNG, enough for tests that decode or
// round-trip image bytes.
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// TinyPNG returns a fresh copy of a valid 1x1 PNG.
func TinyPNG() []byte {
	out := make([]byte, len(tinyPNG))
	copy(out, tinyPNG)
	return out
}

// DummyCapturer implements capture.Capturer without launching a browser.
// By default it returns TinyPNG with a fixed title; set Err to force a
// failure.
type DummyCapturer struct {
	mu       sync.Mutex
	Err      error
	Title    string
	HTML     string
	Requests []capture.Request
	Closed   bool
}

func (d *DummyCapturer) Capture(ctx context.Context, req *capture.Request) (*capture.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.Requests = append(d.Requests, *req)
	err := d.Err
	title, html := d.Title, d.HTML
	d.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if title == "" {
		title = "Example Domain"
	}
	if html == "" {
		html = "<html><head><title>" + title + "</title></head><body></body></html>"
	}
	return &capture.Result{
		Image: TinyPNG(),
		Title: title,
		HTML:  html,
	}, nil
}

func (d *DummyCapturer) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Closed = true
	return nil
}

// CapturedRequests returns a copy of the requests seen so far.
func (d *DummyCapturer) CapturedRequests() []capture.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]capture.Request, len(d.Requests))
	copy(out, d.Requests)
	return out
}
