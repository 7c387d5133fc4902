package journal

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateSnapshot(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.Create("first", "alpha")
	require.NoError(t, err)

	_, err = store.Create("second", "beta")
	require.NoError(t, err)

	snapshot := store.CreateSnapshot(DefaultSnapshotOptions())

	require.Equal(t, SnapshotVersion, snapshot.Version)
	require.False(t, snapshot.CreatedAt.IsZero())
	require.Len(t, snapshot.Entries, 2)
	require.Equal(t, "second", snapshot.Entries[0].Title)
	require.Equal(t, "first", snapshot.Entries[1].Title)
	require.NotNil(t, snapshot.Config)
}

func TestCreateSnapshot_WithoutConfig(t *testing.T) {
	store, _ := openTestStore(t)

	snapshot := store.CreateSnapshot(CreateSnapshotOptions{IncludeConfig: false})

	require.Nil(t, snapshot.Config)
}

func TestWriteSnapshot_Pretty(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.Create("note", "content")
	require.NoError(t, err)

	snapshot := store.CreateSnapshot(DefaultSnapshotOptions())

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, snapshot, true))

	out := buf.String()
	require.True(t, strings.Contains(out, "\n  "), "pretty output should be indented")

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, snapshot.Version, decoded.Version)
	require.Len(t, decoded.Entries, 1)
}

func TestWriteSnapshot_Compact(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.Create("note", "content")
	require.NoError(t, err)

	snapshot := store.CreateSnapshot(DefaultSnapshotOptions())

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, snapshot, false))

	// Encoder output is a single line
	require.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestWriteSnapshotToFile(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.Create("on disk", "file content")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "export.json")

	snapshot := store.CreateSnapshot(DefaultSnapshotOptions())
	require.NoError(t, WriteSnapshotToFile(path, snapshot, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Entries, 1)
	require.Equal(t, "on disk", decoded.Entries[0].Title)
}
