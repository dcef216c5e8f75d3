package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"board_sections", "board_cards"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_FilteredFlagConstraint(t *testing.T) {
	db := openTestDB(t)

	res, err := db.Exec(`INSERT INTO board_sections (name) VALUES ('S')`)
	require.NoError(t, err)
	sectionID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO board_cards (section_id, filtered) VALUES (?, 2)`, sectionID)
	assert.Error(t, err)
}

func TestOpenSnapshot_MissingFile(t *testing.T) {
	_, err := OpenSnapshot(filepath.Join(t.TempDir(), "board.db"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestOpenSnapshot_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.db")
	created, err := CreateSnapshot(path)
	require.NoError(t, err)
	require.NoError(t, created.Close())

	db, err := OpenSnapshot(path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM board_cards`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestOpenSnapshot_IsReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.db")
	created, err := CreateSnapshot(path)
	require.NoError(t, err)
	require.NoError(t, created.Close())

	db, err := OpenSnapshot(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO board_sections (name) VALUES ('S')`)
	assert.Error(t, err)
	assert.Equal(t, "delete", journalMode(t, db))
}

func TestOpenSnapshot_ForeignDatabaseUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")
	plain, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = plain.Exec(`CREATE TABLE notes (body TEXT)`)
	require.NoError(t, err)
	require.NoError(t, plain.Close())

	_, err = OpenSnapshot(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSnapshot)

	plain, err = sql.Open("sqlite", path)
	require.NoError(t, err)
	defer plain.Close()

	assert.Equal(t, "delete", journalMode(t, plain))
	var tables int
	require.NoError(t, plain.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'`).Scan(&tables))
	assert.Equal(t, 1, tables)
}

func TestReadOnlyDSN(t *testing.T) {
	assert.Equal(t, "file:/tmp/board.db?mode=ro", readOnlyDSN("/tmp/board.db"))
	assert.Equal(t, "file:/tmp/a%3fb%23c%25.db?mode=ro", readOnlyDSN("/tmp/a?b#c%.db"))
}

func journalMode(t *testing.T, db *sql.DB) string {
	t.Helper()
	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	return mode
}
