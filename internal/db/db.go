package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

var (
	// ErrSnapshotNotFound is returned by OpenSnapshot for a missing file.
	ErrSnapshotNotFound = errors.New("board snapshot not found")
	// ErrNotSnapshot is returned by OpenSnapshot for a SQLite file without
	// the board tables.
	ErrNotSnapshot = errors.New("not a board snapshot")
)

// snapshotTables must all exist for a file to be read as a board snapshot.
var snapshotTables = []string{"board_sections", "board_cards"}

// OpenDB opens a SQLite database at the given path, creating it if needed.
// If path is ":memory:", uses an in-memory database.
// Sets WAL mode and enables foreign keys.
// Runs migrations automatically.
func OpenDB(path string) (*sql.DB, error) {
	return openWritable(path, true)
}

// CreateSnapshot opens or creates a snapshot file for writing. Snapshots use
// the rollback journal so the board lives in a single file once closed.
func CreateSnapshot(path string) (*sql.DB, error) {
	return openWritable(path, false)
}

func openWritable(path string, wal bool) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if path == ":memory:" {
		// Each pooled connection would get its own empty in-memory database.
		db.SetMaxOpenConns(1)
	} else if wal {
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting WAL mode: %w", err)
		}
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// OpenSnapshot opens an existing board snapshot read-only. It never creates
// the file, changes its journal mode or migrates it: a file without the board
// tables fails with ErrNotSnapshot.
func OpenSnapshot(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
		}
		return nil, fmt.Errorf("checking snapshot: %w", err)
	}

	db, err := sql.Open("sqlite", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}

	for _, table := range snapshotTables {
		var n int
		err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("reading snapshot schema: %w", err)
		}
		if n == 0 {
			db.Close()
			return nil, fmt.Errorf("%w: %s has no %s table", ErrNotSnapshot, path, table)
		}
	}
	return db, nil
}

var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

func readOnlyDSN(path string) string {
	return "file:" + uriEscaper.Replace(filepath.ToSlash(path)) + "?mode=ro"
}
