package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/sprintsum/internal/db"
	"github.com/alexanderramin/sprintsum/internal/domain"
	"github.com/alexanderramin/sprintsum/internal/importer"
)

// SQLiteBoardRepo implements BoardRepo on a SQLite snapshot database.
type SQLiteBoardRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

var _ BoardRepo = (*SQLiteBoardRepo)(nil)

// NewSQLiteBoardRepo creates a new SQLiteBoardRepo.
func NewSQLiteBoardRepo(database *sql.DB) *SQLiteBoardRepo {
	return &SQLiteBoardRepo{db: database, uow: db.NewSQLiteUnitOfWork(database)}
}

func (r *SQLiteBoardRepo) LoadSections(ctx context.Context) ([]domain.Section, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM board_sections ORDER BY order_index, id`)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}

	var ids []int64
	var sections []domain.Section
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		ids = append(ids, id)
		sections = append(sections, domain.Section{Label: name, Items: []domain.RawItem{}})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating sections: %w", err)
	}
	rows.Close()

	byID := make(map[int64]int, len(ids))
	for i, id := range ids {
		byID[id] = i
	}

	cards, err := r.db.QueryContext(ctx,
		`SELECT section_id, title, priority, original_estimate, remaining_estimate
		FROM board_cards
		WHERE filtered = 0
		ORDER BY section_id, order_index, id`)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}
	defer cards.Close()

	for cards.Next() {
		var sectionID int64
		var title, priority, original, remaining sql.NullString
		if err := cards.Scan(&sectionID, &title, &priority, &original, &remaining); err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}
		idx, ok := byID[sectionID]
		if !ok {
			continue
		}
		sections[idx].Items = append(sections[idx].Items, domain.RawItem{
			Title:                 nullableStringPtr(title),
			PriorityLabel:         nullableStringPtr(priority),
			OriginalEstimateText:  nullableStringPtr(original),
			RemainingEstimateText: nullableStringPtr(remaining),
		})
	}
	if err := cards.Err(); err != nil {
		return nil, fmt.Errorf("iterating cards: %w", err)
	}

	if sections == nil {
		sections = []domain.Section{}
	}
	return sections, nil
}

func (r *SQLiteBoardRepo) ReplaceBoard(ctx context.Context, board *importer.BoardSchema) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM board_cards`); err != nil {
			return fmt.Errorf("clearing cards: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM board_sections`); err != nil {
			return fmt.Errorf("clearing sections: %w", err)
		}

		for i, s := range board.Sections {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO board_sections (name, order_index) VALUES (?, ?)`, s.Name, i)
			if err != nil {
				return fmt.Errorf("inserting section %q: %w", s.Name, err)
			}
			sectionID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("reading section id: %w", err)
			}
			for j, c := range s.Cards {
				if err := insertCard(ctx, tx, sectionID, j, c); err != nil {
					return fmt.Errorf("section %q: %w", s.Name, err)
				}
			}
		}
		return nil
	})
}

func insertCard(ctx context.Context, tx db.DBTX, sectionID int64, position int, c importer.CardImport) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO board_cards (section_id, order_index, card_key, title, priority,
			original_estimate, remaining_estimate, filtered)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sectionID,
		position,
		c.Key,
		nullableStringToValue(c.Title),
		nullableStringToValue(c.Priority),
		nullableStringToValue(c.OriginalEstimate),
		nullableStringToValue(c.RemainingEstimate),
		boolToInt(c.Filtered),
	)
	if err != nil {
		return fmt.Errorf("inserting card %d: %w", position, err)
	}
	return nil
}

func (r *SQLiteBoardRepo) CountCards(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM board_cards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cards: %w", err)
	}
	return n, nil
}
