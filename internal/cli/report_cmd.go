package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexanderramin/sprintsum/internal/cli/formatter"
	"github.com/alexanderramin/sprintsum/internal/config"
	"github.com/alexanderramin/sprintsum/internal/contract"
	"github.com/alexanderramin/sprintsum/internal/export"
	"github.com/alexanderramin/sprintsum/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// outputFormat is a pflag.Value restricted to config.Formats.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	if !config.IsFormat(v) {
		return fmt.Errorf("must be one of %s", strings.Join(config.Formats, ", "))
	}
	*f = outputFormat(v)
	return nil
}

func (f *outputFormat) Type() string { return "format" }

type reportOptions struct {
	format      outputFormat
	out         string
	collapsed   bool
	watch       bool
	interactive bool
}

func newReportCmd(app *App) *cobra.Command {
	opts := reportOptions{format: outputFormat(app.Config.DefaultFormat)}
	if opts.format == "" {
		opts.format = "text"
	}

	cmd := &cobra.Command{
		Use:   "report [board]",
		Short: "Summarize estimates of a board snapshot",
		Long: `Summarize estimates of a board snapshot per section, overall and per
priority tier. The board is a .json, .yaml or .yml export, a .db/.sqlite
snapshot, or - to read JSON from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveBoardPath(app, args)
			if err != nil {
				return err
			}
			if path == StdinPath && (opts.watch || opts.interactive) {
				return errors.New("--watch and --interactive need a board file, not stdin")
			}
			if opts.format == "xlsx" && opts.out == "" && app.IsInteractive {
				return errors.New("xlsx output is binary; use --out to write it to a file")
			}

			src, release, err := openSource(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer release()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			generate := func(ctx context.Context) (*contract.ReportResponse, error) {
				return app.Reports.Generate(ctx, src, contract.ReportRequest{Source: path})
			}

			if opts.interactive {
				return runInteractive(ctx, app, path, generate, opts)
			}

			render := func() error {
				resp, err := generate(ctx)
				if err != nil {
					return err
				}
				return writeReport(cmd.OutOrStdout(), app, resp, opts)
			}
			if err := render(); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}

			w, err := NewWatcher(path, app.Config.WatchDebounce)
			if err != nil {
				return err
			}
			defer w.Close()

			logger.Get(ctx).Info().Str("path", path).Msg("watching board for changes")
			return watchLoop(ctx, w.Changes(), func() error {
				if err := render(); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().VarP(&opts.format, "format", "f", "Output format: "+strings.Join(config.Formats, ", "))
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.collapsed, "collapsed", false, "Show section headlines without card lines")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate the report when the board file changes")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Browse the report in an interactive view")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func resolveBoardPath(app *App, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if !app.IsInteractive {
		return "", errNoBoard
	}
	ask := app.AskBoardPath
	if ask == nil {
		ask = askBoardPath
	}
	path, err := ask()
	if err != nil {
		return "", err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errNoBoard
	}
	return path, nil
}

// writeReport renders resp in the selected format to opts.out, or to
// stdout when no file is given.
func writeReport(stdout io.Writer, app *App, resp *contract.ReportResponse, opts reportOptions) (err error) {
	w := stdout
	if opts.out != "" {
		f, createErr := os.Create(opts.out)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		w = f
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return nil
	case "markdown":
		md := formatter.FormatMarkdown(resp, formatter.MarkdownOptions{
			IconBaseURL: app.Config.IconBaseURL,
			Collapsed:   opts.collapsed,
		})
		if opts.out == "" && app.IsInteractive {
			rendered, err := formatter.RenderMarkdown(md, app.Width, app.Config.NoColor)
			if err != nil {
				return err
			}
			md = rendered
		}
		_, err := io.WriteString(w, md)
		return err
	case "xlsx":
		return export.WriteWorkbook(resp, w)
	default:
		_, err := io.WriteString(w, formatter.FormatReport(resp, formatter.ReportOptions{Collapsed: opts.collapsed}))
		return err
	}
}
