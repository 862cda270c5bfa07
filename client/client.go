// Package client is a small HTTP client for a running screenshot-control
// server, for callers that want captures without embedding a browser.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBaseURL matches the server's default listen address.
const DefaultBaseURL = "http://localhost:8765"

// Client talks to the screenshot-control HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client. baseURL may be empty, in which case DefaultBaseURL
// is used.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Captures can take the server's whole page-load deadline.
		http: &http.Client{Timeout: 120 * time.Second},
	}
}

// Preset mirrors the server's preset listing.
type Preset struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Label  string `json:"label"`
}

// Presets returns the server's built-in viewport presets.
func (c *Client) Presets(ctx context.Context) ([]Preset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/presets", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get presets: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get presets: unexpected status %d", resp.StatusCode)
	}

	var out []Preset
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	return out, nil
}

// ScreenshotOptions control a remote capture.
type ScreenshotOptions struct {
	// Preset names a viewport size; ignored when Width and Height are set.
	Preset string

	// Width and Height set an explicit viewport size.
	Width  int
	Height int

	// FullPage captures the entire scrollable height.
	FullPage bool

	// TimeoutSeconds bounds the capture on the server side.
	TimeoutSeconds int

	// OutputPath, when set, saves the decoded PNG locally and Screenshot
	// returns nil bytes.
	OutputPath string
}

type screenshotRequest struct {
	URL      string `json:"url"`
	Preset   string `json:"preset,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	FullPage bool   `json:"full_page,omitempty"`
	Format   string `json:"format"`
	Timeout  int    `json:"timeout,omitempty"`
}

type screenshotResponse struct {
	Success bool   `json:"success"`
	Image   string `json:"image"`
	Path    string `json:"path"`
	Error   string `json:"error"`
}

// Screenshot captures url remotely and returns the PNG bytes, or saves them
// to opts.OutputPath when set (returning the saved path).
func (c *Client) Screenshot(ctx context.Context, url string, opts ScreenshotOptions) ([]byte, string, error) {
	body := screenshotRequest{
		URL:      url,
		Preset:   opts.Preset,
		Width:    opts.Width,
		Height:   opts.Height,
		FullPage: opts.FullPage,
		Format:   "base64",
		Timeout:  opts.TimeoutSeconds,
	}
	if body.Preset == "" && (body.Width <= 0 || body.Height <= 0) {
		body.Preset = "desktop"
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/screenshot", bytes.NewReader(payload))
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("post screenshot: %w", err)
	}
	defer resp.Body.Close()

	var decoded screenshotResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, "", fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !decoded.Success {
		msg := decoded.Error
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return nil, "", fmt.Errorf("screenshot failed: %s", msg)
	}

	img, err := base64.StdEncoding.DecodeString(decoded.Image)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	if opts.OutputPath == "" {
		return img, "", nil
	}

	path := opts.OutputPath
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, "", fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return nil, "", fmt.Errorf("writing screenshot to %s: %w", path, err)
	}
	return nil, path, nil
}

// Health reports whether the server answers its health check.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: status %d", resp.StatusCode)
	}
	return nil
}
