//go:build !sqlite

package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/jotr/internal/journal"
	"github.com/inovacc/jotr/internal/model"
	"github.com/inovacc/jotr/internal/storage"
)

// setupTestStore wires the package-level store and backend to a fresh
// Bolt database, as PersistentPreRunE would.
func setupTestStore(t *testing.T) func() {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "jotr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	b, err := storage.NewBolt(filepath.Join(tmpDir, "test.bolt"))
	if err != nil {
		_ = os.RemoveAll(tmpDir)

		t.Fatalf("failed to create test database: %v", err)
	}

	backend = b
	store = journal.Open(b, slog.New(slog.NewTextHandler(io.Discard, nil)))
	cfg = model.DefaultConfig()

	return func() {
		if err := b.Close(); err != nil {
			t.Logf("failed to close database: %v", err)
		}

		backend = nil
		store = nil

		_ = os.RemoveAll(tmpDir)
	}
}

func TestRunNew_TitleFlagIsTrimmed(t *testing.T) {
	cleanup := setupTestStore(t)
	defer cleanup()

	newTitle = "  padded  "
	newMessage = "note body"

	defer func() { newTitle, newMessage = "", "" }()

	if err := runNew(newCmd, nil); err != nil {
		t.Fatalf("runNew() error = %v", err)
	}

	entries := store.Entries()
	if len(entries) != 1 {
		t.Fatalf("store has %d entries, want 1", len(entries))
	}

	if entries[0].Title != "padded" {
		t.Errorf("stored title = %q, want %q", entries[0].Title, "padded")
	}
}

func TestRunNew_WhitespaceOnlyTitle(t *testing.T) {
	cleanup := setupTestStore(t)
	defer cleanup()

	newTitle = "   "
	newMessage = "orphan content"

	defer func() { newTitle, newMessage = "", "" }()

	// A whitespace-only title counts as absent, and --message alone
	// is rejected rather than composing interactively
	if err := runNew(newCmd, nil); err == nil {
		t.Fatal("runNew() expected an error for a whitespace-only title with --message")
	}

	if store.Len() != 0 {
		t.Errorf("store has %d entries, want 0", store.Len())
	}
}
