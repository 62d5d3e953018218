package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/cristiangauma/bsaver-dl/internal/shared"
	"github.com/urfave/cli/v3"
)

const version = "1.0.0"

// Exit codes mirror the conventional CLI contract: 1 for fatal errors,
// 128+SIGINT for user interruption.
const (
	exitFailure   = 1
	exitInterrupt = 130
)

func main() {
	logger := shared.NewLogger(nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:    "bsaver-dl",
		Usage:   "Download BeatSaver playlists",
		Version: version,
		Description: "Reads .bplist files (BeatSaver playlist format), extracts metadata, " +
			"saves the cover image, and fetches all associated song archives from the BeatSaver CDN.",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "bplist"},
		},
		Flags:    downloadFlags(),
		Action:   runner.Download,
		Commands: runner.register(),
	}

	if err := app.Run(ctx, os.Args); err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			logger.Warn("download interrupted by user")
			os.Exit(exitInterrupt)
		}
		logger.Errorf("error: %v", err)
		os.Exit(exitFailure)
	}
}
