// Package storage provides the persistence layer for jotr.
//
// The package defines the [Backend] interface which abstracts the flat
// key/value storage used for the journal, allowing different backends to
// be used interchangeably. Currently supported backends are BoltDB
// (default) and SQLite.
//
// # Backend Interface
//
// The [Backend] interface defines methods for:
//   - The journal blob (ReadEntries, WriteEntries): the whole entry
//     collection serialized as one value under a single fixed key.
//   - Configuration management (GetConfig, SaveConfig).
//   - Health and lifecycle (Ping, Close).
//
// # Construction
//
// Use [Open] to open the backend at its default location under the app
// data directory, or the backend-specific constructor with an explicit
// path:
//
//	backend, err := storage.Open()
//	if err != nil { ... }
//	defer backend.Close()
//
// The backend is selected at build time using build tags:
//   - Default: BoltDB
//   - With -tags sqlite: SQLite via modernc.org/sqlite
package storage
