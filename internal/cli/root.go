package cli

import (
	"context"
	"os"

	"github.com/alexanderramin/sprintsum/internal/cli/formatter"
	"github.com/alexanderramin/sprintsum/internal/config"
	"github.com/alexanderramin/sprintsum/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// App holds the services and terminal settings used by CLI commands.
type App struct {
	Reports service.ReportService
	Config  config.Config

	// IsInteractive is true when both stdin and stdout are terminals. It
	// gates prompts, the interactive view and glamour rendering.
	IsInteractive bool
	// Width is the terminal width used for markdown wrapping; 0 means 80.
	Width int

	// AskBoardPath prompts for a board path. Nil uses the huh form.
	AskBoardPath func() (string, error)
	// RunProgram runs a bubbletea model to completion. Nil uses tea.NewProgram.
	RunProgram func(ctx context.Context, m tea.Model) error
}

// DetectInteractive reports whether in and out are both attached to a
// terminal.
func DetectInteractive(in, out *os.File) bool {
	return isTerminal(in) && isTerminal(out)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewRootCmd creates the top-level "sprintsum" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var noColor bool

	root := &cobra.Command{
		Use:           "sprintsum",
		Short:         "Summarize board estimates per section and priority",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || app.Config.NoColor {
				app.Config.NoColor = true
				formatter.DisableColor()
			}
		},
	}

	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newReportCmd(app),
		newParseCmd(app),
		newTiersCmd(app),
		newSnapshotCmd(app),
	)

	return root
}
