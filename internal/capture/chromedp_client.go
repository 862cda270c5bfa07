package capture

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/infractura/screenshot-control/internal/logging"
)

// docHeightJS mirrors the usual cross-engine way of measuring the full
// scrollable document height.
const docHeightJS = `Math.max(
	document.body.scrollHeight,
	document.documentElement.scrollHeight,
	document.body.offsetHeight,
	document.documentElement.offsetHeight
)`

// networkIdleAfter is how long the wire must stay quiet before the page is
// considered settled.
const networkIdleAfter = 500 * time.Millisecond

// ChromeDPClient captures screenshots by driving Chrome over the DevTools
// protocol. The exec allocator is shared; each Capture gets its own tab
// context which is cancelled before the call returns.
type ChromeDPClient struct {
	cfg         Config
	logger      logging.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromeDPClient creates the chromedp backend. The browser process itself
// is launched lazily on the first Capture.
func NewChromeDPClient(cfg Config, logger logging.Logger) (*ChromeDPClient, error) {
	if logger == nil {
		logger = logging.NewStdoutLogger("capture")
	}
	componentLogger := logger.With(logging.Field{Key: "backend", Value: BackendChromedp})

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
	)
	if !cfg.Headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)

	componentLogger.Debug("created chromedp capturer",
		logging.Field{Key: "exec_path", Value: cfg.ExecPath},
		logging.Field{Key: "headless", Value: cfg.Headless})

	return &ChromeDPClient{
		cfg:         cfg,
		logger:      componentLogger,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
	}, nil
}

// waitNetworkIdle returns a channel that is signalled once no network
// requests have been in flight for idleAfter. Must be wired up before
// navigation so no events are missed.
func waitNetworkIdle(ctx context.Context, idleAfter time.Duration) chan struct{} {
	idleChan := make(chan struct{})
	var activeReqs int32
	var timer *time.Timer
	var timerMutex sync.Mutex
	var once sync.Once

	startTimer := func() {
		timerMutex.Lock()
		defer timerMutex.Unlock()

		if timer != nil {
			timer.Stop()
		}

		timer = time.AfterFunc(idleAfter, func() {
			if atomic.LoadInt32(&activeReqs) == 0 {
				once.Do(func() {
					close(idleChan)
				})
			}
		})
	}

	chromedp.ListenTarget(ctx, func(ev any) {
		switch ev.(type) {
		case *network.EventRequestWillBeSent:
			atomic.AddInt32(&activeReqs, 1)
		case *network.EventLoadingFinished, *network.EventLoadingFailed:
			if atomic.AddInt32(&activeReqs, -1) <= 0 {
				startTimer()
			}
		}
	})

	// The page may make no requests beyond the document itself.
	startTimer()

	return idleChan
}

// Capture implements Capturer.
func (c *ChromeDPClient) Capture(ctx context.Context, req *Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	timeout := c.cfg.timeoutFor(req)
	wait := c.cfg.waitFor(req)

	tabCtx, cancelTab := chromedp.NewContext(c.allocCtx)
	defer cancelTab()

	runCtx, cancelRun := context.WithTimeout(tabCtx, timeout)
	defer cancelRun()

	// Propagate caller cancellation into the tab so an aborted request
	// releases its browser session promptly.
	stop := context.AfterFunc(ctx, cancelRun)
	defer stop()

	c.logger.Debug("capturing",
		logging.Field{Key: "url", Value: req.URL},
		logging.Field{Key: "width", Value: req.Width},
		logging.Field{Key: "height", Value: req.Height},
		logging.Field{Key: "full_page", Value: req.FullPage},
		logging.Field{Key: "timeout", Value: timeout.String()})

	start := time.Now()

	idleChan := waitNetworkIdle(runCtx, networkIdleAfter)

	if err := chromedp.Run(runCtx,
		network.Enable(),
		chromedp.EmulateViewport(int64(req.Width), int64(req.Height)),
		chromedp.Navigate(req.URL),
	); err != nil {
		return nil, c.failed(req.URL, classifyChromedpErr(err, req.URL, timeout))
	}

	// Give the page up to the settle window to go network-idle; a chatty
	// page (polling, analytics) just uses the whole window.
	select {
	case <-idleChan:
	case <-time.After(wait):
	case <-runCtx.Done():
		return nil, c.failed(req.URL, classifyChromedpErr(runCtx.Err(), req.URL, timeout))
	}

	var buf []byte
	var title, html string

	tasks := chromedp.Tasks{}
	if req.FullPage {
		tasks = append(tasks, c.fullPageViewport(int64(req.Width)))
	}
	tasks = append(tasks,
		chromedp.Title(&title),
		chromedp.OuterHTML("html", &html),
		chromedp.CaptureScreenshot(&buf),
	)

	if err := chromedp.Run(runCtx, tasks); err != nil {
		return nil, c.failed(req.URL, classifyChromedpErr(err, req.URL, timeout))
	}

	elapsed := time.Since(start)
	c.logger.Info("captured",
		logging.Field{Key: "url", Value: req.URL},
		logging.Field{Key: "bytes", Value: len(buf)},
		logging.Field{Key: "elapsed", Value: elapsed.String()})

	return &Result{
		Image:   buf,
		Title:   title,
		HTML:    html,
		Elapsed: elapsed,
	}, nil
}

func (c *ChromeDPClient) failed(url string, err error) error {
	c.logger.Warn("capture failed",
		logging.Field{Key: "url", Value: url},
		logging.Field{Key: "error", Value: err.Error()})
	return err
}

// fullPageViewport measures the document height and resizes the emulated
// viewport to it, clamped so Chromium's canvas limit cannot fail the capture.
func (c *ChromeDPClient) fullPageViewport(width int64) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		var docHeight float64
		if err := chromedp.Evaluate(docHeightJS, &docHeight).Do(ctx); err != nil {
			return fmt.Errorf("measure document height: %w", err)
		}
		height := int64(docHeight)
		if maxH := c.cfg.maxHeight(); height > maxH {
			c.logger.Warn("full-page height clamped",
				logging.Field{Key: "document_height", Value: height},
				logging.Field{Key: "max_height", Value: maxH})
			height = maxH
		}
		if height < 1 {
			height = 1
		}
		return chromedp.EmulateViewport(width, height).Do(ctx)
	})
}

// Close releases the shared allocator and its browser process.
func (c *ChromeDPClient) Close() error {
	if c.allocCancel != nil {
		c.allocCancel()
	}
	return nil
}

// classifyChromedpErr maps chromedp failures onto the package error kinds.
func classifyChromedpErr(err error, url string, timeout time.Duration) error {
	msg := err.Error()
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %q after %s", ErrTimeout, url, timeout)
	case strings.Contains(msg, "executable file not found"),
		strings.Contains(msg, "chrome failed to start"),
		strings.Contains(msg, "exec:"):
		return fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	case strings.Contains(msg, "net::ERR"),
		strings.Contains(msg, "page load error"):
		return fmt.Errorf("%w: %q: %v", ErrNavigation, url, err)
	}
	return fmt.Errorf("capture %q: %w", url, err)
}
