package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristiangauma/bsaver-dl/internal/shared"
	"github.com/cristiangauma/bsaver-dl/internal/tasks"
	"github.com/cristiangauma/bsaver-dl/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI runs the download with an interactive progress view.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	config, p, path, destDir, err := r.prepare(cmd)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/bsaver-dl-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}

	engine := r.newEngine(config, fileLogger)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := tasks.RunOpts{ForceRedownload: cmd.Bool("force-redownload")}
	model := ui.NewModel(runCtx, cancel, engine, p, path, destDir, opts)
	prog := tea.NewProgram(model)

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
