package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/sprintsum/internal/db"
	"github.com/alexanderramin/sprintsum/internal/importer"
	"github.com/alexanderramin/sprintsum/internal/repository"
	"github.com/alexanderramin/sprintsum/internal/service"
)

// StdinPath selects a JSON board read from standard input.
const StdinPath = "-"

type sourceKind int

const (
	sourceStdin sourceKind = iota
	sourceFile
	sourceSnapshot
)

var errNoBoard = errors.New("board path required (pass a file, or - for stdin)")

func sourceKindFor(path string) (sourceKind, error) {
	if path == StdinPath {
		return sourceStdin, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return sourceSnapshot, nil
	}
	if _, err := importer.FormatForPath(path); err != nil {
		return 0, err
	}
	return sourceFile, nil
}

// openSource returns the BoardSource for path and a func releasing it.
func openSource(path string, stdin io.Reader) (service.BoardSource, func() error, error) {
	noop := func() error { return nil }

	kind, err := sourceKindFor(path)
	if err != nil {
		return nil, noop, err
	}

	switch kind {
	case sourceStdin:
		return &importer.ReaderSource{R: stdin, Format: importer.FormatJSON}, noop, nil
	case sourceSnapshot:
		database, err := db.OpenSnapshot(path)
		if err != nil {
			return nil, noop, fmt.Errorf("opening snapshot: %w", err)
		}
		return repository.NewSQLiteBoardRepo(database), database.Close, nil
	default:
		return importer.NewFileSource(path), noop, nil
	}
}
