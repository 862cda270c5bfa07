// Package history records capture metadata in SQLite so the API server can
// answer "what was captured recently" without keeping image bytes around.
package history

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/infractura/screenshot-control/internal/logging"
)

//go:embed schema.sql
var schemaFS embed.FS

// Entry is one recorded capture.
type Entry struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Preset      string    `json:"preset,omitempty"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	FullPage    bool      `json:"full_page"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	SavedPath   string    `json:"saved_path,omitempty"`
	ByteSize    int       `json:"byte_size"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store persists capture history in a SQLite database.
type Store struct {
	db     *sql.DB
	logger logging.Logger
}

// NewStore returns a Store and runs migrations from schema.sql.
// db should typically be the SQLite DB at <storage root>/history.db.
func NewStore(db *sql.DB, logger logging.Logger) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	if logger == nil {
		logger = logging.NewStdoutLogger("history")
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Record inserts an entry, assigning its ID and timestamp. The returned entry
// carries both.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO captures (id, url, preset, width, height, full_page, title, description, saved_path, byte_size, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.URL, e.Preset, e.Width, e.Height, boolToInt(e.FullPage),
		e.Title, e.Description, e.SavedPath, e.ByteSize, e.CreatedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("recording capture: %w", err)
	}

	s.logger.Debug("recorded capture",
		logging.Field{Key: "id", Value: e.ID},
		logging.Field{Key: "url", Value: e.URL})
	return e, nil
}

// List returns the most recent entries, newest first. limit <= 0 means a
// default of 50.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, preset, width, height, full_page, title, description, saved_path, byte_size, created_at
		FROM captures
		ORDER BY created_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing captures: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var fullPage int
		if err := rows.Scan(&e.ID, &e.URL, &e.Preset, &e.Width, &e.Height, &fullPage,
			&e.Title, &e.Description, &e.SavedPath, &e.ByteSize, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning capture row: %w", err)
		}
		e.FullPage = fullPage != 0
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating capture rows: %w", err)
	}
	return out, nil
}

// Count returns the total number of recorded captures.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM captures`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting captures: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
