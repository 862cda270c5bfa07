// Command screenshot captures a screenshot of a web page from the command
// line.
//
// Usage: screenshot <url> [-p|--preset NAME] [-o|--output PATH] [--full-page]
// [--width W] [--height H] [--timeout SECONDS]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/infractura/screenshot-control/internal/app"
	"github.com/infractura/screenshot-control/internal/capture"
	"github.com/infractura/screenshot-control/internal/cli"
	"github.com/infractura/screenshot-control/internal/config"
	"github.com/infractura/screenshot-control/internal/logging"
	"github.com/infractura/screenshot-control/internal/output"
	"github.com/infractura/screenshot-control/internal/preset"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	args, err := cli.ParseArgs(argv)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n%s\n", err, cli.Usage())
		return 1
	}

	if args.List {
		listPresets(stdout)
		return 0
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	captureCfg := cfg.CaptureConfig()
	if args.Backend != "" {
		captureCfg.Backend = args.Backend
	}

	capture.RegisterDefaultBackends()
	capturer, err := capture.NewCapturer(captureCfg, logging.NopLogger{})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer capturer.Close()

	appCfg := app.DefaultConfig()
	appCfg.CaptureCfg = captureCfg
	svc := app.NewService(appCfg, capturer, nil, logging.NopLogger{})

	outcome, err := svc.Screenshot(context.Background(), app.Params{
		URL:        args.URL,
		Preset:     args.Preset,
		Width:      args.Width,
		Height:     args.Height,
		FullPage:   args.FullPage,
		Timeout:    time.Duration(args.TimeoutSeconds) * time.Second,
		Wait:       time.Duration(args.WaitSeconds * float64(time.Second)),
		Mode:       output.ModeFile,
		OutputPath: args.Output,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if args.Quiet {
		fmt.Fprintln(stdout, outcome.SavedPath)
		return 0
	}

	abs := outcome.SavedPath
	if a, err := filepath.Abs(abs); err == nil {
		abs = a
	}
	fmt.Fprintf(stdout, "\nScreenshot saved to: %s\n\n", abs)
	return 0
}

func listPresets(w io.Writer) {
	fmt.Fprintln(w, "\nAvailable screen size presets:")
	fmt.Fprintf(w, "%-12s %-12s %s\n", "NAME", "SIZE", "DESCRIPTION")
	fmt.Fprintln(w, "--------------------------------------------------")
	for _, p := range preset.All() {
		size := fmt.Sprintf("%dx%d", p.Width, p.Height)
		fmt.Fprintf(w, "%-12s %-12s %s\n", p.Name, size, p.Label)
	}
	fmt.Fprintln(w)
}
