package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/BlackRoad-OS/blackroad-community-organizer/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "community-organizer.db"

// Store wraps the SQLite database holding members, events, and RSVPs.
// It is a per-invocation resource: open, perform one logical operation,
// close. Each write operation runs in a single transaction.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates the data directory if needed, opens the database file inside
// it, and applies the schema. Safe to call repeatedly; the schema statements
// are idempotent. The caller must Close the returned store.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Stats returns the count of active members, all events, and RSVPs with
// response "attending", plus the database path.
func (s *Store) Stats() (*types.Stats, error) {
	st := &types.Stats{DBPath: s.path}

	counts := []struct {
		query string
		dest  *int64
	}{
		{"SELECT COUNT(*) FROM members WHERE active = 1", &st.ActiveMembers},
		{"SELECT COUNT(*) FROM events", &st.TotalEvents},
		{"SELECT COUNT(*) FROM rsvps WHERE response = 'attending'", &st.ConfirmedRSVPs},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("counting: %w", err)
		}
	}

	return st, nil
}

// now returns the current time formatted as RFC 3339. All timestamps are
// stored as strings so lexicographic ordering matches chronological order.
func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
