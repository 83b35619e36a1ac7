package history

import (
	"context"
	"fmt"
	"time"

	"github.com/nerrad567/homesim-core/internal/device"
	"github.com/nerrad567/homesim-core/internal/infrastructure/database"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 200
)

// schema creates the state_changes table on first open. The log is
// append-only: rows are inserted per actuation and never updated.
const schema = `
CREATE TABLE IF NOT EXISTS state_changes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	device_id  TEXT NOT NULL,
	name       TEXT NOT NULL,
	kind       TEXT NOT NULL,
	field      TEXT NOT NULL,
	value      TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_state_changes_device
	ON state_changes (device_id, created_at);
`

// Entry is one persisted state change, as read back by Recent.
type Entry struct {
	ID        int64
	RunID     string
	DeviceID  string
	Name      string
	Kind      string
	Field     string
	Value     string
	CreatedAt time.Time
}

// Store persists device state changes to SQLite. It is a write-mostly
// audit log: the simulator only inserts during a run; Recent exists
// for post-run inspection and tests. Nothing is ever read back into
// device state.
type Store struct {
	db    *database.DB
	runID string
}

// Open creates (or reuses) the history database at cfg.Path and
// ensures the schema exists.
//
// Parameters:
//   - cfg: Database configuration (path, WAL, busy timeout)
//   - runID: Identifier stamped onto every row written by this process
//
// Returns:
//   - *Store: Ready store
//   - error: If the database cannot be opened or migrated
func Open(cfg database.Config, runID string) (*Store, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close() //nolint:errcheck // Best effort cleanup on error path
		return nil, fmt.Errorf("history: creating schema: %w", err)
	}

	return &Store{db: db, runID: runID}, nil
}

// Record inserts one state change.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - change: The state change emitted by a device
//
// Returns:
//   - error: nil on success, otherwise the underlying database error
func (s *Store) Record(ctx context.Context, change device.StateChange) error {
	if change.DeviceID == "" {
		return fmt.Errorf("history: device id is required")
	}

	at := change.At
	if at.IsZero() {
		at = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO state_changes (run_id, device_id, name, kind, field, value, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		s.runID,
		change.DeviceID,
		change.Name,
		string(change.Kind),
		change.Field,
		fmt.Sprint(change.Value),
		at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("history: inserting state change: %w", err)
	}

	return nil
}

// Recent returns the newest state changes for a device, ordered newest
// first.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - deviceID: Unique device identifier
//   - limit: Maximum entries to return (default 50, max 200)
//
// Returns:
//   - []Entry: Entries ordered by created_at DESC
//   - error: nil on success, otherwise the underlying query error
func (s *Store) Recent(ctx context.Context, deviceID string, limit int) ([]Entry, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("history: device id is required")
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, device_id, name, kind, field, value, created_at
		 FROM state_changes
		 WHERE device_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		deviceID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: querying state changes: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var entry Entry
		var createdAt string

		if err := rows.Scan(&entry.ID, &entry.RunID, &entry.DeviceID, &entry.Name,
			&entry.Kind, &entry.Field, &entry.Value, &createdAt); err != nil {
			return nil, fmt.Errorf("history: scanning state change: %w", err)
		}

		timestamp, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("history: parsing created_at: %w", err)
		}
		entry.CreatedAt = timestamp

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterating state changes: %w", err)
	}

	return entries, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
