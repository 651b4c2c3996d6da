// Package sqlite provides a SQLite-based implementation of the workspace store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. The workspace aggregate is
// stored as a single JSON document in a one-row table: the database contributes
// atomic replacement, WAL durability, and a busy timeout for concurrent
// sessions, while the document keeps load and save symmetrical with the file
// backend.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.claimmate/data/workspace.db
package sqlite
