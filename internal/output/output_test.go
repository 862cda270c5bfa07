package output

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormat_Base64RoundTrip(t *testing.T) {
	t.Parallel()

	img := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}
	res, err := Format(img, ModeBase64, "", "https://example.com")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if res.SavedPath != "" {
		t.Errorf("base64 mode populated SavedPath %q", res.SavedPath)
	}

	decoded, err := base64.StdEncoding.DecodeString(res.Base64)
	if err != nil {
		t.Fatalf("decoding base64: %v", err)
	}
	if !bytes.Equal(decoded, img) {
		t.Errorf("base64 did not round-trip: got %v want %v", decoded, img)
	}
}

func TestFormat_FileToDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	img := []byte("fake-png")

	res, err := Format(img, ModeFile, dir, "https://example.com/some/page")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if res.Base64 != "" {
		t.Errorf("file mode populated Base64")
	}
	if filepath.Dir(res.SavedPath) != dir {
		t.Errorf("SavedPath %q not inside %q", res.SavedPath, dir)
	}

	got, err := os.ReadFile(res.SavedPath)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !bytes.Equal(got, img) {
		t.Errorf("saved bytes differ")
	}
}

func TestFormat_FileToExplicitPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "shot.png")
	img := []byte("fake-png")

	res, err := Format(img, ModeFile, path, "https://example.com")
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if res.SavedPath != path {
		t.Errorf("SavedPath = %q, want %q", res.SavedPath, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
}

func TestFormat_UnknownMode(t *testing.T) {
	t.Parallel()

	if _, err := Format([]byte("x"), Mode("hologram"), "", "https://example.com"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

// Two captures of the same URL in the same second must not collide.
func TestFilename_UniqueWithinSameSecond(t *testing.T) {
	t.Parallel()

	a := Filename("https://example.com/page")
	b := Filename("https://example.com/page")
	if a == b {
		t.Fatalf("consecutive filenames collided: %q", a)
	}
}

func TestFilename_Sanitization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		prefix string
	}{
		{"host and path", "https://example.com/a/b", "example.com_a_b_"},
		{"trailing slash stripped", "https://example.com/", "example.com_"},
		{"query ignored", "https://example.com/x?y=1", "example.com_x_"},
		{"unparseable", "not a url", "screenshot_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename(tt.url)
			if !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("Filename(%q) = %q, want prefix %q", tt.url, got, tt.prefix)
			}
			if !strings.HasSuffix(got, ".png") {
				t.Errorf("Filename(%q) = %q, want .png suffix", tt.url, got)
			}
		})
	}
}

func TestFilename_PunycodesUnicodeHost(t *testing.T) {
	t.Parallel()

	got := Filename("https://bücher.example/")
	if !strings.HasPrefix(got, "xn--") {
		t.Errorf("Filename for unicode host = %q, want punycode xn-- prefix", got)
	}
}
