// Package cli parses command-line arguments for the screenshot binary into a
// capture request. Parsing is deterministic and does not read os.Args, so
// tests can pass arbitrary slices.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Args are the parsed command-line arguments for a single capture run.
type Args struct {
	// URL is the page to capture (positional argument).
	URL string

	// Preset names a built-in viewport size; ignored when both Width and
	// Height are given.
	Preset string

	// Width and Height override the preset when both are set.
	Width  int
	Height int

	// Output is a target file path or directory; empty means a synthesized
	// filename in the working directory.
	Output string

	// FullPage captures the entire scrollable height.
	FullPage bool

	// TimeoutSeconds bounds the capture; 0 means the configured default.
	TimeoutSeconds int

	// WaitSeconds is the settle delay after page load.
	WaitSeconds float64

	// Backend overrides the capture backend for this run.
	Backend string

	// List requests the preset table instead of a capture.
	List bool

	// Quiet prints only the saved path on success.
	Quiet bool

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns Args. The URL may appear
// before or after the flags.
func ParseArgs(args []string) (*Args, error) {
	// flag stops at the first non-flag argument, so peel a leading URL off
	// before handing the rest over.
	var positional []string
	rest := args
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		positional = append(positional, rest[0])
		rest = rest[1:]
	}

	fs := flag.NewFlagSet("screenshot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	out := &Args{RawArgs: args, Preset: "desktop", WaitSeconds: 2}

	fs.StringVar(&out.Preset, "p", out.Preset, "Screen size preset")
	fs.StringVar(&out.Preset, "preset", out.Preset, "Screen size preset")
	fs.StringVar(&out.Output, "o", "", "Output filename or directory")
	fs.StringVar(&out.Output, "output", "", "Output filename or directory")
	fs.IntVar(&out.Width, "width", 0, "Custom viewport width")
	fs.IntVar(&out.Height, "height", 0, "Custom viewport height")
	fs.BoolVar(&out.FullPage, "full-page", false, "Capture full scrolling page")
	fs.IntVar(&out.TimeoutSeconds, "timeout", 0, "Page load deadline in seconds")
	fs.Float64Var(&out.WaitSeconds, "wait", out.WaitSeconds, "Seconds to wait for page load")
	fs.StringVar(&out.Backend, "backend", "", "Capture backend (chromedp|playwright)")
	fs.BoolVar(&out.List, "l", false, "List available screen size presets")
	fs.BoolVar(&out.List, "list", false, "List available screen size presets")
	fs.BoolVar(&out.Quiet, "q", false, "Only output filename on success")
	fs.BoolVar(&out.Quiet, "quiet", false, "Only output filename on success")

	if err := fs.Parse(rest); err != nil {
		return nil, err
	}
	positional = append(positional, fs.Args()...)

	if len(positional) > 1 {
		return nil, fmt.Errorf("unexpected arguments: %v", positional[1:])
	}
	if len(positional) == 1 {
		out.URL = positional[0]
	}

	if out.URL == "" && !out.List {
		return nil, fmt.Errorf("missing required URL argument")
	}
	if (out.Width > 0) != (out.Height > 0) {
		return nil, fmt.Errorf("--width and --height must be given together")
	}

	return out, nil
}

// Usage returns the CLI usage text.
func Usage() string {
	return strings.TrimSpace(`
Usage: screenshot <url> [options]

Options:
  -p, --preset NAME    Screen size preset (default: desktop)
  -o, --output PATH    Output filename or directory
      --width W        Custom viewport width (requires --height)
      --height H       Custom viewport height (requires --width)
      --full-page      Capture full scrolling page
      --timeout SECS   Page load deadline in seconds
      --wait SECS      Settle delay after load (default: 2)
      --backend NAME   Capture backend (chromedp|playwright)
  -l, --list           List available screen size presets
  -q, --quiet          Only output filename on success
`)
}
