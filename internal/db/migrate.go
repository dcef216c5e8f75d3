package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS board_sections (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	// Nullable text columns distinguish a field the exporter did not capture
	// from an empty value.
	`CREATE TABLE IF NOT EXISTS board_cards (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		section_id         INTEGER NOT NULL REFERENCES board_sections(id) ON DELETE CASCADE,
		order_index        INTEGER NOT NULL DEFAULT 0,
		card_key           TEXT NOT NULL DEFAULT '',
		title              TEXT,
		priority           TEXT,
		original_estimate  TEXT,
		remaining_estimate TEXT,
		filtered           INTEGER NOT NULL DEFAULT 0 CHECK(filtered IN (0, 1))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_board_cards_section ON board_cards(section_id, order_index)`,
	`CREATE INDEX IF NOT EXISTS idx_board_sections_order ON board_sections(order_index)`,
}
