package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/alexanderramin/sprintsum/internal/cli"
	"github.com/alexanderramin/sprintsum/internal/cli/formatter"
	"github.com/alexanderramin/sprintsum/internal/config"
	"github.com/alexanderramin/sprintsum/internal/logger"
	"github.com/alexanderramin/sprintsum/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger.Init(cfg.LogLevel, cfg.LogJSON, os.Stderr)
	if cfg.NoColor {
		formatter.DisableColor()
	}

	app := &cli.App{
		Reports:       service.NewReportService(service.NewLogUseCaseObserver(nil)),
		Config:        cfg,
		IsInteractive: cli.DetectInteractive(os.Stdin, os.Stdout),
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		app.Width = cols
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Global().Debug().Str("format", cfg.DefaultFormat).Bool("interactive", app.IsInteractive).Msg("starting")

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
