package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/infractura/screenshot-control/internal/app"
	"github.com/infractura/screenshot-control/internal/logging"
	"github.com/infractura/screenshot-control/internal/output"
)

// wsEvent is one progress message on the capture websocket. The final event
// carries either the base64 image or an error.
type wsEvent struct {
	Stage   string `json:"stage"`
	Success bool   `json:"success,omitempty"`
	Image   string `json:"image,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleScreenshotWS captures a screenshot while streaming stage events to
// the client. Parameters arrive as query values; the result is base64.
// A dropped connection cancels the capture and releases its browser session.
func (s *Server) handleScreenshotWS(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := app.Params{
		URL:      q.Get("url"),
		Preset:   q.Get("preset"),
		FullPage: q.Get("full_page") == "true",
		Mode:     output.ModeBase64,
	}
	if v, err := strconv.Atoi(q.Get("width")); err == nil && v > 0 {
		params.Width = v
	}
	if v, err := strconv.Atoi(q.Get("height")); err == nil && v > 0 {
		params.Height = v
	}
	if v, err := strconv.Atoi(q.Get("timeout")); err == nil && v > 0 {
		params.Timeout = time.Duration(v) * time.Second
	}
	if params.Preset == "" && (params.Width <= 0 || params.Height <= 0) {
		params.Preset = "desktop"
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", logging.Field{Key: "error", Value: err.Error()})
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Cancel the capture as soon as the client goes away. Reads also pump
	// control frames so pings keep working.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	if err := conn.WriteJSON(wsEvent{Stage: "accepted"}); err != nil {
		return
	}
	if err := conn.WriteJSON(wsEvent{Stage: "capturing"}); err != nil {
		cancel()
		return
	}

	outcome, err := s.service.Screenshot(ctx, params)
	if err != nil {
		s.logger.Warn("websocket screenshot failed",
			logging.Field{Key: "url", Value: params.URL},
			logging.Field{Key: "error", Value: err.Error()})
		_ = conn.WriteJSON(wsEvent{Stage: "done", Error: err.Error()})
		return
	}

	s.logger.Info("websocket screenshot succeeded",
		logging.Field{Key: "url", Value: params.URL},
		logging.Field{Key: "bytes", Value: len(outcome.Image)})
	_ = conn.WriteJSON(wsEvent{Stage: "done", Success: true, Image: outcome.Base64})
}
