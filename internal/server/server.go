package server

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/infractura/screenshot-control/docs" // swagger docs

	"github.com/infractura/screenshot-control/internal/app"
	"github.com/infractura/screenshot-control/internal/capture"
	"github.com/infractura/screenshot-control/internal/history"
	"github.com/infractura/screenshot-control/internal/logging"
	"github.com/infractura/screenshot-control/internal/metrics"
	"github.com/infractura/screenshot-control/internal/output"
	"github.com/infractura/screenshot-control/internal/preset"

	_ "modernc.org/sqlite" // SQLite driver
)

// Server is the HTTP + WebSocket API surface for screenshot-control.
type Server struct {
	cfg       Config
	service   *app.Service
	store     *history.Store
	router    chi.Router
	upgrader  websocket.Upgrader
	logger    logging.Logger
	historyDB *sql.DB
}

// NewServer creates a new Server with its own Service.
func NewServer(cfg Config) (*Server, error) {
	if cfg.AppConfig == nil {
		cfg.AppConfig = app.DefaultConfig()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}

	var (
		db    *sql.DB
		store *history.Store
	)
	if !cfg.DisableHistory {
		// Make sure storage root exists
		storageRoot, err := expandPath(cfg.AppConfig.StorageRoot)
		if err != nil {
			return nil, fmt.Errorf("expanding storage root path: %w", err)
		}
		cfg.AppConfig.StorageRoot = storageRoot
		if err := os.MkdirAll(storageRoot, 0o755); err != nil {
			logger.Warn("creating storage root directory",
				logging.Field{Key: "path", Value: storageRoot},
				logging.Field{Key: "error", Value: err.Error()})
		}

		db, err = sql.Open("sqlite", filepath.Join(storageRoot, "history.db"))
		if err != nil {
			return nil, fmt.Errorf("opening history database: %w", err)
		}

		store, err = history.NewStore(db, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("creating history store: %w", err)
		}
	}

	capturer := cfg.Capturer
	if capturer == nil {
		var err error
		capturer, err = capture.NewCapturer(cfg.AppConfig.CaptureCfg, logger)
		if err != nil {
			if db != nil {
				db.Close()
			}
			return nil, fmt.Errorf("creating capture backend: %w", err)
		}
	}

	svc := app.NewService(cfg.AppConfig, capturer, store, logger)

	r := chi.NewRouter()
	s := &Server{
		cfg:     cfg,
		service: svc,
		store:   store,
		router:  r,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: tighten for production
				return true
			},
		},
		historyDB: db,
	}

	s.routes()
	return s, nil
}

// Service returns the underlying service for advanced use (tests, etc.).
func (s *Server) Service() *app.Service {
	return s.service
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/presets", s.optionsHandler("GET"))
	r.Options("/screenshot", s.optionsHandler("POST"))
	r.Options("/history", s.optionsHandler("GET"))
	r.Options("/health", s.optionsHandler("GET"))

	r.Get("/presets", s.handleListPresets)
	r.Post("/screenshot", s.handleScreenshot)
	r.Get("/history", s.handleListHistory)
	r.Get("/health", s.handleHealth)

	// WebSocket capture with progress events
	r.Get("/ws/screenshot", s.handleScreenshotWS)

	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}

	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}

	if r.Body != nil && r.Method == http.MethodPost {
		if bodyBytes, err := io.ReadAll(r.Body); err == nil {
			fields = append(fields, logging.Field{Key: "body", Value: string(bodyBytes)})
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// Close shuts down the service and underlying resources.
func (s *Server) Close() {
	if s.historyDB != nil {
		s.historyDB.Close()
	}
	if s.service != nil {
		s.service.Close()
	}
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:        s.cfg.ListenAddr,
		Handler:     s,
		ReadTimeout: 15 * time.Second,
		// Captures can legitimately take the full page-load deadline, so
		// no write timeout.
		WriteTimeout: 0,
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: msg})
}

// statusForError maps capture pipeline errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, capture.ErrInvalidURL),
		errors.Is(err, capture.ErrMissingDimensions),
		errors.Is(err, preset.ErrUnknownPreset):
		return http.StatusBadRequest
	case errors.Is(err, capture.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, capture.ErrNavigation):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// --- HTTP handlers ---

// handleListPresets godoc
// @Summary List screen size presets
// @Produce json
// @Success 200 {array} preset.Preset
// @Router /presets [get]
func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	ps := preset.All()
	s.logger.Info("listed presets", logging.Field{Key: "count", Value: len(ps)})
	writeJSON(w, http.StatusOK, ps)
}

// handleScreenshot godoc
// @Summary Capture a screenshot
// @Accept json
// @Produce json
// @Param request body ScreenshotRequest true "capture request"
// @Success 200 {object} ScreenshotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /screenshot [post]
func (s *Server) handleScreenshot(w http.ResponseWriter, r *http.Request) {
	var body ScreenshotRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	params, binary, err := paramsFromRequest(body)
	if err != nil {
		s.logger.Warn("bad screenshot request", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := s.service.Screenshot(r.Context(), params)
	if err != nil {
		s.logger.Warn("screenshot failed",
			logging.Field{Key: "url", Value: body.URL},
			logging.Field{Key: "error", Value: err.Error()})
		writeError(w, statusForError(err), err.Error())
		return
	}

	s.logger.Info("screenshot succeeded",
		logging.Field{Key: "url", Value: body.URL},
		logging.Field{Key: "bytes", Value: len(outcome.Image)})

	if binary {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(outcome.Image)
		return
	}

	writeJSON(w, http.StatusOK, ScreenshotResponse{
		Success: true,
		Image:   outcome.Base64,
		Path:    outcome.SavedPath,
	})
}

// paramsFromRequest translates the API payload into service parameters.
// The preset default matches the CLI: desktop unless dimensions are explicit.
func paramsFromRequest(body ScreenshotRequest) (app.Params, bool, error) {
	if body.URL == "" {
		return app.Params{}, false, errors.New("missing url")
	}

	presetName := body.Preset
	if presetName == "" && (body.Width <= 0 || body.Height <= 0) {
		presetName = "desktop"
	}

	var (
		mode   output.Mode
		binary bool
	)
	switch body.Format {
	case "", "base64":
		mode = output.ModeBase64
	case "binary":
		// Raw PNG in the response body; formatter still runs in base64
		// mode so nothing touches the disk.
		mode = output.ModeBase64
		binary = true
	case "file":
		mode = output.ModeFile
	default:
		return app.Params{}, false, fmt.Errorf("unknown format %q", body.Format)
	}

	return app.Params{
		URL:        body.URL,
		Preset:     presetName,
		Width:      body.Width,
		Height:     body.Height,
		FullPage:   body.FullPage,
		Timeout:    time.Duration(body.TimeoutSeconds) * time.Second,
		Mode:       mode,
		OutputPath: body.OutputPath,
	}, binary, nil
}

// handleListHistory godoc
// @Summary List recent captures
// @Produce json
// @Param limit query int false "maximum entries (default 50)"
// @Success 200 {array} history.Entry
// @Router /history [get]
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusOK, []history.Entry{})
		return
	}

	limit := 0
	if ls := r.URL.Query().Get("limit"); ls != "" {
		if v, err := strconv.Atoi(ls); err == nil && v > 0 {
			limit = v
		}
	}

	entries, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.logger.Warn("listing history", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	s.logger.Info("listed history", logging.Field{Key: "count", Value: len(entries)})
	writeJSON(w, http.StatusOK, entries)
}

// handleHealth godoc
// @Summary Health check
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
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
