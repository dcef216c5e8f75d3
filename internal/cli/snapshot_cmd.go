package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/sprintsum/internal/db"
	"github.com/alexanderramin/sprintsum/internal/importer"
	"github.com/alexanderramin/sprintsum/internal/repository"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <board.json|board.yaml> <snapshot.db>",
		Short: "Store a board export in a SQLite snapshot",
		Long: `Store a board export in a SQLite snapshot, replacing its previous
contents. Filtered cards are kept in the snapshot and skipped by report.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			schema, err := importer.LoadBoardSchema(args[0])
			if err != nil {
				return err
			}
			if errs := importer.ValidateBoardSchema(schema); len(errs) > 0 {
				return fmt.Errorf("invalid board (%d problems): %w", len(errs), errors.Join(errs...))
			}

			database, err := db.CreateSnapshot(args[1])
			if err != nil {
				return err
			}
			defer database.Close()

			repo := repository.NewSQLiteBoardRepo(database)
			if err := repo.ReplaceBoard(ctx, schema); err != nil {
				return err
			}
			cards, err := repo.CountCards(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Stored %d sections, %d cards in %s\n", len(schema.Sections), cards, args[1])
			return nil
		},
	}
}
