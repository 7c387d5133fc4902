package journal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/jotr/internal/model"
	"github.com/inovacc/jotr/internal/storage"
)

// MinPrefixLen is the shortest id prefix ResolveID accepts.
const MinPrefixLen = 4

// Store owns the entry collection. It keeps all entries in memory,
// ordered newest first, and writes the whole collection back to the
// backend after every mutation. A Store must stay confined to a single
// goroutine.
type Store struct {
	backend storage.Backend
	logger  *slog.Logger
	entries []model.Entry
	subs    []func()
}

// Open loads the journal from the backend. Loading is fail-soft: a
// missing blob starts an empty journal, and an undecodable blob is
// logged and left in place while the session starts empty.
func Open(backend storage.Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{backend: backend, logger: logger}
	s.load()

	return s
}

func (s *Store) load() {
	data, err := s.backend.ReadEntries()
	if err != nil {
		s.logger.Warn("reading journal failed, starting empty", "error", err)

		return
	}

	if data == nil {
		return
	}

	var entries []model.Entry

	if err := json.Unmarshal(data, &entries); err != nil {
		decodeErr := &DecodeError{Bytes: len(data), Err: err}
		s.logger.Error("journal blob is unreadable, starting empty", "error", decodeErr)

		return
	}

	sortEntries(entries)
	s.entries = entries
}

// sortEntries orders newest first, preserving relative order between
// entries created at the same instant.
func sortEntries(entries []model.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}

// Create adds a new entry at the head of the collection and persists it.
// The returned entry carries its assigned id and timestamps.
func (s *Store) Create(title, content string) (model.Entry, error) {
	now := time.Now().UTC()

	entry := model.Entry{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Creation times only move forward, so the head stays the newest
	s.entries = append([]model.Entry{entry}, s.entries...)
	s.notify()

	return entry, s.persist()
}

// Update replaces the title and content of the entry with the given id
// and bumps its updated timestamp. An unknown id is a no-op.
func (s *Store) Update(id, title, content string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	s.entries[i].Title = title
	s.entries[i].Content = content
	s.entries[i].UpdatedAt = time.Now().UTC()

	sortEntries(s.entries)
	s.notify()

	return s.persist()
}

// Delete removes the entry with the given id. An unknown id is a no-op,
// so Delete is idempotent.
func (s *Store) Delete(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	s.notify()

	return s.persist()
}

// DeleteMany removes every entry whose id appears in ids, persisting the
// collection once. Unknown ids are skipped; when nothing matches, nothing
// is written.
func (s *Store) DeleteMany(ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := s.entries[:0]
	removed := 0

	for _, e := range s.entries {
		if _, ok := drop[e.ID]; ok {
			removed++

			continue
		}

		kept = append(kept, e)
	}

	if removed == 0 {
		return nil
	}

	s.entries = kept
	s.notify()

	return s.persist()
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (model.Entry, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Entry{}, false
	}

	return s.entries[i], true
}

// Entries returns a copy of the collection, newest first. Mutating the
// returned slice does not affect the store.
func (s *Store) Entries() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// ResolveID resolves a full id or a unique id prefix to the id of a
// stored entry.
func (s *Store) ResolveID(idOrPrefix string) (string, error) {
	if i := s.indexOf(idOrPrefix); i >= 0 {
		return s.entries[i].ID, nil
	}

	if len(idOrPrefix) < MinPrefixLen {
		return "", fmt.Errorf("id prefix %q is too short (minimum %d characters)", idOrPrefix, MinPrefixLen)
	}

	var matches []string

	for i := range s.entries {
		if strings.HasPrefix(s.entries[i].ID, idOrPrefix) {
			matches = append(matches, s.entries[i].ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no entry matches %q", idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q is ambiguous (%d matches)", idOrPrefix, len(matches))
	}
}

// Subscribe registers fn to run after every change to the collection.
// Callbacks run synchronously on the mutating call's goroutine, before
// the mutation's persistence outcome is known.
func (s *Store) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn()
	}
}

func (s *Store) indexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}

	return -1
}

func (s *Store) persist() error {
	entries := s.entries
	if entries == nil {
		entries = []model.Entry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding journal: %w", err)
	}

	if err := s.backend.WriteEntries(data); err != nil {
		writeErr := &WriteError{Err: err}
		s.logger.Error("persisting journal failed", "error", err)

		return writeErr
	}

	return nil
}
