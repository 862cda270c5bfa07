package history

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/infractura/screenshot-control/internal/logging"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewStore(db, logging.NopLogger{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestStore_RecordAndList(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Record(ctx, Entry{
		URL:      "https://example.com",
		Preset:   "phone",
		Width:    390,
		Height:   844,
		FullPage: true,
		Title:    "Example Domain",
		ByteSize: 1234,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if first.ID == "" {
		t.Error("Record did not assign an ID")
	}
	if first.CreatedAt.IsZero() {
		t.Error("Record did not assign a timestamp")
	}

	if _, err := store.Record(ctx, Entry{
		URL:    "https://other.example",
		Preset: "desktop",
		Width:  1920,
		Height: 1080,
	}); err != nil {
		t.Fatalf("Record second: %v", err)
	}

	entries, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List returned %d entries, want 2", len(entries))
	}

	var found *Entry
	for i := range entries {
		if entries[i].ID == first.ID {
			found = &entries[i]
		}
	}
	if found == nil {
		t.Fatalf("recorded entry %s not listed", first.ID)
	}
	if found.URL != "https://example.com" || found.Preset != "phone" ||
		found.Width != 390 || found.Height != 844 ||
		!found.FullPage || found.Title != "Example Domain" || found.ByteSize != 1234 {
		t.Errorf("listed entry differs from recorded: %+v", found)
	}
}

func TestStore_ListLimit(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Record(ctx, Entry{
			URL: "https://example.com", Width: 100, Height: 100,
		}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := store.List(ctx, 3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("List(3) returned %d entries", len(entries))
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 5 {
		t.Errorf("Count = %d, want 5", n)
	}
}
