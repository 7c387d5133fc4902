package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/inovacc/jotr/internal/model"
)

// SnapshotVersion is the current snapshot format version
const SnapshotVersion = "1.0"

// Snapshot represents a complete journal export
type Snapshot struct {
	Version   string        `json:"version"`
	CreatedAt time.Time     `json:"created_at"`
	Hostname  string        `json:"hostname,omitempty"`
	Entries   []model.Entry `json:"entries"`
	Config    *model.Config `json:"config,omitempty"`
}

// CreateSnapshotOptions configures snapshot creation
type CreateSnapshotOptions struct {
	IncludeConfig bool // Include configuration
}

// DefaultSnapshotOptions returns sensible defaults for snapshot creation
func DefaultSnapshotOptions() CreateSnapshotOptions {
	return CreateSnapshotOptions{
		IncludeConfig: true,
	}
}

// CreateSnapshot builds an export document from the current entries.
func (s *Store) CreateSnapshot(opts CreateSnapshotOptions) *Snapshot {
	snapshot := &Snapshot{
		Version:   SnapshotVersion,
		CreatedAt: time.Now().UTC(),
		Entries:   s.Entries(),
	}

	// Get hostname
	if hostname, err := os.Hostname(); err == nil {
		snapshot.Hostname = hostname
	}

	// Get config if requested
	if opts.IncludeConfig {
		cfg, err := s.backend.GetConfig()
		if err == nil {
			snapshot.Config = cfg
		}
		// Silently ignore config errors - it's optional
	}

	return snapshot
}

// WriteSnapshot writes a snapshot to a writer as JSON
func WriteSnapshot(w io.Writer, snapshot *Snapshot, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return nil
}

// WriteSnapshotToFile writes a snapshot to a file
func WriteSnapshotToFile(path string, snapshot *Snapshot, pretty bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			// Log error but don't fail - the write may have succeeded
			_, _ = fmt.Fprintf(os.Stderr, "warning: failed to close file: %v\n", err)
		}
	}()

	return WriteSnapshot(file, snapshot, pretty)
}
