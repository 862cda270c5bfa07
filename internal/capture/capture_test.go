package capture

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/infractura/screenshot-control/internal/logging"
)

func TestRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name: "valid https",
			req:  Request{URL: "https://example.com", Width: 1920, Height: 1080},
		},
		{
			name: "valid http with port",
			req:  Request{URL: "http://localhost:9999/page", Width: 390, Height: 844},
		},
		{
			name:    "relative url",
			req:     Request{URL: "/just/a/path", Width: 100, Height: 100},
			wantErr: ErrInvalidURL,
		},
		{
			name:    "unsupported scheme",
			req:     Request{URL: "ftp://example.com", Width: 100, Height: 100},
			wantErr: ErrInvalidURL,
		},
		{
			name:    "missing host",
			req:     Request{URL: "https://", Width: 100, Height: 100},
			wantErr: ErrInvalidURL,
		},
		{
			name:    "zero width",
			req:     Request{URL: "https://example.com", Width: 0, Height: 100},
			wantErr: ErrMissingDimensions,
		},
		{
			name:    "negative height",
			req:     Request{URL: "https://example.com", Width: 100, Height: -1},
			wantErr: ErrMissingDimensions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Backend != BackendChromedp {
		t.Errorf("default backend = %q, want %q", cfg.Backend, BackendChromedp)
	}
	if !cfg.Headless {
		t.Error("default config is not headless")
	}

	if got := cfg.timeoutFor(&Request{}); got != cfg.DefaultTimeout {
		t.Errorf("timeoutFor(zero) = %v, want %v", got, cfg.DefaultTimeout)
	}
	if got := cfg.timeoutFor(&Request{Timeout: 5 * time.Second}); got != 5*time.Second {
		t.Errorf("timeoutFor(5s) = %v", got)
	}

	if got := (Config{}).maxHeight(); got != MaxCaptureHeight {
		t.Errorf("maxHeight() = %d, want %d", got, MaxCaptureHeight)
	}
	if got := (Config{MaxHeight: 5000}).maxHeight(); got != 5000 {
		t.Errorf("maxHeight() = %d, want 5000", got)
	}
}

func TestClassifyChromedpErr(t *testing.T) {
	t.Parallel()

	timeout := 10 * time.Second
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "deadline",
			err:  fmt.Errorf("run: %w", context.DeadlineExceeded),
			want: ErrTimeout,
		},
		{
			name: "dns failure",
			err:  errors.New("page load error net::ERR_NAME_NOT_RESOLVED"),
			want: ErrNavigation,
		},
		{
			name: "connection refused",
			err:  errors.New("net::ERR_CONNECTION_REFUSED"),
			want: ErrNavigation,
		},
		{
			name: "missing binary",
			err:  errors.New(`exec: "google-chrome": executable file not found in $PATH`),
			want: ErrBrowserLaunch,
		},
		{
			name: "startup failure",
			err:  errors.New("chrome failed to start:"),
			want: ErrBrowserLaunch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyChromedpErr(tt.err, "https://example.com", timeout)
			if !errors.Is(got, tt.want) {
				t.Errorf("classifyChromedpErr(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassifyPlaywrightErr(t *testing.T) {
	t.Parallel()

	timeout := 10 * time.Second
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "driver timeout",
			err:  errors.New("Timeout 10000ms exceeded."),
			want: ErrTimeout,
		},
		{
			name: "deadline",
			err:  context.DeadlineExceeded,
			want: ErrTimeout,
		},
		{
			name: "navigation",
			err:  errors.New("net::ERR_NAME_NOT_RESOLVED at https://nope.invalid/"),
			want: ErrNavigation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyPlaywrightErr(tt.err, "https://example.com", timeout)
			if !errors.Is(got, tt.want) {
				t.Errorf("classifyPlaywrightErr(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestBackendRegistry(t *testing.T) {
	RegisterDefaultBackends()

	names := ListBackends()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found[BackendChromedp] || !found[BackendPlaywright] {
		t.Fatalf("ListBackends() = %v, want chromedp and playwright", names)
	}

	if _, err := NewCapturer(Config{Backend: "no-such-backend"}, logging.NopLogger{}); err == nil {
		t.Fatal("expected error for unregistered backend")
	}

	// Constructing the chromedp backend must not launch a browser.
	c, err := NewCapturer(Config{Backend: BackendChromedp, Headless: true}, logging.NopLogger{})
	if err != nil {
		t.Fatalf("NewCapturer(chromedp): %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
