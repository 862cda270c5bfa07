package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/presets", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]Preset{
			{Name: "desktop", Width: 1920, Height: 1080, Label: "Desktop HD"},
			{Name: "phone", Width: 390, Height: 844, Label: "iPhone 12/13/14"},
		})
	})
	mux.HandleFunc("/screenshot", func(w http.ResponseWriter, r *http.Request) {
		var body screenshotRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(screenshotResponse{Error: "invalid JSON"})
			return
		}
		if body.URL == "https://unreachable.invalid" {
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(screenshotResponse{Error: "navigation failed"})
			return
		}
		_ = json.NewEncoder(w).Encode(screenshotResponse{
			Success: true,
			Image:   base64.StdEncoding.EncodeToString([]byte("fake-png")),
		})
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestClient_Presets(t *testing.T) {
	t.Parallel()
	ts := newStubServer(t)
	c := New(ts.URL)

	ps, err := c.Presets(context.Background())
	if err != nil {
		t.Fatalf("Presets: %v", err)
	}
	if len(ps) != 2 || ps[1].Name != "phone" || ps[1].Width != 390 {
		t.Errorf("Presets = %+v", ps)
	}
}

func TestClient_Screenshot_Bytes(t *testing.T) {
	t.Parallel()
	ts := newStubServer(t)
	c := New(ts.URL)

	img, path, err := c.Screenshot(context.Background(), "https://example.com", ScreenshotOptions{Preset: "phone"})
	if err != nil {
		t.Fatalf("Screenshot: %v", err)
	}
	if path != "" {
		t.Errorf("unexpected saved path %q", path)
	}
	if string(img) != "fake-png" {
		t.Errorf("image bytes = %q", img)
	}
}

func TestClient_Screenshot_SavesFile(t *testing.T) {
	t.Parallel()
	ts := newStubServer(t)
	c := New(ts.URL)

	out := filepath.Join(t.TempDir(), "shot.png")
	img, path, err := c.Screenshot(context.Background(), "https://example.com", ScreenshotOptions{
		Preset:     "desktop",
		OutputPath: out,
	})
	if err != nil {
		t.Fatalf("Screenshot: %v", err)
	}
	if img != nil {
		t.Error("expected nil bytes when saving to file")
	}
	if path != out {
		t.Errorf("saved path = %q, want %q", path, out)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(got) != "fake-png" {
		t.Errorf("saved bytes = %q", got)
	}
}

func TestClient_Screenshot_ServerError(t *testing.T) {
	t.Parallel()
	ts := newStubServer(t)
	c := New(ts.URL)

	_, _, err := c.Screenshot(context.Background(), "https://unreachable.invalid", ScreenshotOptions{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestClient_Health(t *testing.T) {
	t.Parallel()
	ts := newStubServer(t)
	c := New(ts.URL)

	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health: %v", err)
	}
}
