package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/sprintsum/internal/domain"
)

// FileSource reads a JSON or YAML board snapshot from disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) LoadSections(ctx context.Context) ([]domain.Section, error) {
	schema, err := LoadBoardSchema(s.Path)
	if err != nil {
		return nil, err
	}
	return sectionsFrom(schema)
}

// ReaderSource reads a board snapshot from a stream such as stdin.
type ReaderSource struct {
	R      io.Reader
	Format Format
}

func (s *ReaderSource) LoadSections(ctx context.Context) ([]domain.Section, error) {
	schema, err := ReadBoardSchema(s.R, s.Format)
	if err != nil {
		return nil, err
	}
	return sectionsFrom(schema)
}

func sectionsFrom(schema *BoardSchema) ([]domain.Section, error) {
	if errs := ValidateBoardSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid board (%d problems): %w", len(errs), errors.Join(errs...))
	}
	return Convert(schema), nil
}
