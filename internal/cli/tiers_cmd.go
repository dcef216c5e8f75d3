package cli

import (
	"fmt"

	"github.com/alexanderramin/sprintsum/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTiersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List priority tiers in report order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTiers())
			return nil
		},
	}
}
