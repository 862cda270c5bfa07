// Package output converts captured image bytes into their final shape:
// a PNG file on disk or a base64 string.
package output

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/idna"
)

// Mode selects how captured bytes are delivered.
type Mode string

const (
	ModeFile   Mode = "file"
	ModeBase64 Mode = "base64"
)

// Result holds the formatted output. Exactly one field is populated,
// matching the requested mode.
type Result struct {
	SavedPath string
	Base64    string
}

// Format delivers image bytes according to mode. sourceURL is used to
// synthesize a filename when outputPath is empty or a directory.
func Format(image []byte, mode Mode, outputPath, sourceURL string) (*Result, error) {
	switch mode {
	case ModeBase64:
		// No size limit is enforced; very large full-page captures produce
		// proportionally large strings.
		return &Result{Base64: base64.StdEncoding.EncodeToString(image)}, nil
	case ModeFile, "":
		path, err := resolvePath(outputPath, sourceURL)
		if err != nil {
			return nil, err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, image, 0o644); err != nil {
			return nil, fmt.Errorf("writing screenshot to %s: %w", path, err)
		}
		return &Result{SavedPath: path}, nil
	default:
		return nil, fmt.Errorf("unknown output mode %q", mode)
	}
}

// resolvePath expands the output argument into a concrete file path. A
// missing argument or a directory target gets a synthesized filename.
func resolvePath(outputPath, sourceURL string) (string, error) {
	if outputPath == "" {
		return Filename(sourceURL), nil
	}

	expanded, err := expandPath(outputPath)
	if err != nil {
		return "", fmt.Errorf("expanding output path: %w", err)
	}

	if strings.HasSuffix(outputPath, string(os.PathSeparator)) || isDir(expanded) {
		return filepath.Join(expanded, Filename(sourceURL)), nil
	}
	return expanded, nil
}

// Filename converts a URL into a safe, unique PNG filename:
// <host><path>_<timestamp>_<short-uuid>.png. The uuid suffix keeps two
// captures of the same URL in the same second from colliding.
func Filename(sourceURL string) string {
	base := "screenshot"
	if u, err := url.Parse(sourceURL); err == nil && u.Host != "" {
		host := u.Hostname()
		// Unicode hostnames become their punycode form so the filename
		// stays ASCII-safe.
		if ascii, err := idna.ToASCII(host); err == nil && ascii != "" {
			host = ascii
		}
		base = strings.TrimRight(host+u.Path, "/")
	}

	var b strings.Builder
	for _, r := range base {
		if (r >= 'A' && r <= 'Z') ||
			(r >= 'a' && r <= 'z') ||
			(r >= '0' && r <= '9') ||
			r == '-' || r == '_' || r == '.' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	safe := strings.Trim(b.String(), "._-")
	if safe == "" {
		safe = "screenshot"
	}

	timestamp := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%s.png", safe, timestamp, uuid.New().String()[:8])
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func expandPath(p string) (string, error) {
	if len(p) > 0 && p[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, p[1:]), nil
	}
	return p, nil
}
