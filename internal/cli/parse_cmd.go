package cli

import (
	"fmt"

	"github.com/alexanderramin/sprintsum/internal/cli/formatter"
	"github.com/alexanderramin/sprintsum/internal/domain"
	"github.com/spf13/cobra"
)

func newParseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <estimate>...",
		Short: "Show the hours each estimate text parses to",
		Example: `  sprintsum parse "1 day, 4 hours" 3h 2d
  sprintsum parse "soon"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]formatter.ParseResult, 0, len(args))
			for _, text := range args {
				results = append(results, formatter.ParseResult{Text: text, Hours: domain.ParseEstimate(text)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatParseResults(results))
			return nil
		},
	}
}
