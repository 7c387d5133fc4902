// Package journal provides the business logic layer for jotr.
//
// This package owns the in-memory entry collection and keeps it
// synchronized with the storage backend. UI concerns belong in the cli
// package; commands belong in cmd.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - A [Store] is constructed explicitly with [Open] and confined to a
//     single goroutine; there is no process-global instance
//   - Every mutation persists the whole collection synchronously before
//     returning, one backend write per call
//
// # Ordering
//
// The collection is always ordered newest first by creation time.
// [Store.Create] inserts at the head; [Store.Update] reasserts the order
// with a stable sort, so entries created at the same instant keep their
// relative positions.
//
// # Failure Handling
//
// Loading is fail-soft: a missing blob means an empty journal, and an
// undecodable blob is logged and left in place while the session starts
// empty. Write failures surface as [WriteError] to the caller; the
// in-memory change is kept so the session keeps working.
package journal
