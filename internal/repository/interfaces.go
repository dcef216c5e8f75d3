package repository

import (
	"context"

	"github.com/alexanderramin/sprintsum/internal/domain"
	"github.com/alexanderramin/sprintsum/internal/importer"
)

// BoardRepo stores and reads board snapshots.
type BoardRepo interface {
	// LoadSections returns every section in board order with its unfiltered
	// cards as raw items.
	LoadSections(ctx context.Context) ([]domain.Section, error)
	// ReplaceBoard overwrites the stored snapshot with the given board.
	ReplaceBoard(ctx context.Context, board *importer.BoardSchema) error
	// CountCards reports how many cards are stored, filtered ones included.
	CountCards(ctx context.Context) (int, error)
}
