// Package database provides SQLite connection management for the
// state-change history log.
//
// It wraps database/sql with the simulator's connection defaults:
// WAL journal mode, busy timeout, foreign keys on, a single-connection
// pool (one writer, no readers during the run), and owner-only file
// permissions.
//
// The history store (internal/history) is the only consumer.
package database
