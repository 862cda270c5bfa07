// Command screenshotd runs the screenshot-control API server.
//
// Configuration comes from SCREENSHOT_* environment variables (optionally a
// .env file): SCREENSHOT_HOST, SCREENSHOT_PORT, SCREENSHOT_TIMEOUT,
// SCREENSHOT_CHROME_PATH, SCREENSHOT_BACKEND, SCREENSHOT_STORAGE_ROOT.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/infractura/screenshot-control/internal/app"
	"github.com/infractura/screenshot-control/internal/capture"
	"github.com/infractura/screenshot-control/internal/config"
	"github.com/infractura/screenshot-control/internal/logging"
	"github.com/infractura/screenshot-control/internal/server"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := logging.NewStdoutLogger("screenshotd")

	capture.RegisterDefaultBackends()

	appCfg := app.DefaultConfig()
	appCfg.CaptureCfg = cfg.CaptureConfig()
	appCfg.StorageRoot = cfg.StorageRoot

	s, err := server.NewServer(server.Config{
		ListenAddr: cfg.ListenAddr(),
		AppConfig:  appCfg,
		Logger:     logger,
	})
	if err != nil {
		log.Fatalf("server setup error: %v", err)
	}
	defer s.Close()

	httpServer := s.HTTPServer()

	go func() {
		logger.Info("listening",
			logging.Field{Key: "addr", Value: cfg.ListenAddr()},
			logging.Field{Key: "backend", Value: cfg.Backend})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", logging.Field{Key: "error", Value: err.Error()})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Warn("shutdown", logging.Field{Key: "error", Value: err.Error()})
	}
}
