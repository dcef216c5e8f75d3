package cli

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/sprintsum/internal/db"
	"github.com/alexanderramin/sprintsum/internal/importer"
	"github.com/alexanderramin/sprintsum/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceKindFor(t *testing.T) {
	tests := []struct {
		path string
		want sourceKind
	}{
		{"-", sourceStdin},
		{"board.json", sourceFile},
		{"board.YML", sourceFile},
		{"board.db", sourceSnapshot},
		{"board.sqlite3", sourceSnapshot},
	}
	for _, tt := range tests {
		got, err := sourceKindFor(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := sourceKindFor("board.txt")
	assert.ErrorIs(t, err, importer.ErrUnsupportedFormat)
}

func TestOpenSource_Stdin(t *testing.T) {
	src, release, err := openSource("-", strings.NewReader(`{"sections":[{"name":"S","cards":[]}]}`))
	require.NoError(t, err)
	defer release()

	sections, err := src.LoadSections(context.Background())
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, "S", sections[0].Label)
}

func TestOpenSource_File(t *testing.T) {
	src, release, err := openSource(boardFixture, nil)
	require.NoError(t, err)
	defer release()

	assert.IsType(t, &importer.FileSource{}, src)
	sections, err := src.LoadSections(context.Background())
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Len(t, sections[0].Items, 2, "filtered card dropped")
}

func TestOpenSource_Snapshot(t *testing.T) {
	dbPath := t.TempDir() + "/board.db"
	_, err := executeCmd(t, testApp(t), "snapshot", boardFixture, dbPath)
	require.NoError(t, err)

	src, release, err := openSource(dbPath, nil)
	require.NoError(t, err)
	defer func() { assert.NoError(t, release()) }()

	assert.IsType(t, &repository.SQLiteBoardRepo{}, src)
	sections, err := src.LoadSections(context.Background())
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Len(t, sections[0].Items, 2)
}

func sqliteState(t *testing.T, path string) (journal string, tables []string) {
	t.Helper()
	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.QueryRow(`PRAGMA journal_mode`).Scan(&journal))
	rows, err := conn.Query(`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		tables = append(tables, name)
	}
	require.NoError(t, rows.Err())
	return journal, tables
}

func TestOpenSource_ForeignDatabaseUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")
	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = conn.Exec(`CREATE TABLE notes (body TEXT)`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	journalBefore, tablesBefore := sqliteState(t, path)

	_, release, err := openSource(path, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrNotSnapshot)
	require.NoError(t, release())

	journalAfter, tablesAfter := sqliteState(t, path)
	assert.Equal(t, journalBefore, journalAfter)
	assert.Equal(t, tablesBefore, tablesAfter)
	assert.Equal(t, []string{"notes"}, tablesAfter)
}

func TestOpenSource_SnapshotReadLeavesFileUnchanged(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "board.db")
	_, err := executeCmd(t, testApp(t), "snapshot", boardFixture, dbPath)
	require.NoError(t, err)

	journalBefore, tablesBefore := sqliteState(t, dbPath)
	assert.Equal(t, "delete", journalBefore)

	out, err := executeCmd(t, testApp(t), "report", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Sprint 7")

	journalAfter, tablesAfter := sqliteState(t, dbPath)
	assert.Equal(t, journalBefore, journalAfter)
	assert.Equal(t, tablesBefore, tablesAfter)
}
