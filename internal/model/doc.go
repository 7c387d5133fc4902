// Package model defines the data types shared across jotr.
//
// # Types
//
// The package contains the core domain types persisted by the storage
// backends and rendered by the CLI and TUI layers:
//
//   - Entry: a single journal entry with content and timestamps.
//   - Config: user configuration for date formatting, editor and export.
//
// Types here carry JSON tags so they serialize the same way regardless
// of which backend stores them.
package model
