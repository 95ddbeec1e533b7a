package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"beatsite/internal/render"
	"beatsite/internal/startup"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	palette := render.PlainPalette()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		palette = render.DefaultPalette()
	}

	runner := NewRunner(RunnerOpts{
		Logger:  logger,
		Output:  os.Stdout,
		Palette: &palette,
	})

	app := &cli.Command{
		Name:     "beatsearch",
		Usage:    "Search beats, artists and genres",
		Version:  startup.GetBuildInfo().Version,
		Flags:    []cli.Flag{catalogFlag()},
		Commands: runner.register(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		logger.Fatalf("beatsearch: %v", err)
	}
}
