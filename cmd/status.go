package main

import (
	"context"
	"fmt"

	"github.com/cristiangauma/bsaver-dl/internal/formatter"
	"github.com/cristiangauma/bsaver-dl/internal/shared"
	"github.com/cristiangauma/bsaver-dl/internal/tasks"
	"github.com/cristiangauma/bsaver-dl/internal/ui"
	"github.com/urfave/cli/v3"
)

// Status parses a playlist, reconciles it against the destination directory,
// and prints the song table without performing any network I/O.
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	_, p, _, destDir, err := r.prepare(cmd)
	if err != nil {
		return err
	}

	rows, missing := tasks.Reconcile(p.Songs, destDir)

	var out []byte
	switch format := cmd.String("format"); format {
	case "table", "":
		r.writePlain("%s\n", ui.RenderPlaylistInfo(p))
		r.writePlain("%s\n", ui.RenderStatusTable(rows))
		r.writePlain("⬇️  Missing: %d of %d songs\n", len(missing), len(p.Songs))
		return nil
	case "csv":
		out, err = formatter.ExportToCSV(rows)
	case "markdown", "md":
		out, err = formatter.ExportToMarkdown(p, rows)
	case "text", "txt":
		out, err = formatter.ExportToText(p, rows)
	default:
		return fmt.Errorf("%w: unknown format '%s' (must be table, csv, markdown or text)", shared.ErrInvalidFlag, format)
	}

	if err != nil {
		return err
	}

	_, err = r.output.Write(out)
	return err
}
