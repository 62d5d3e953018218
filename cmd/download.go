package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/cristiangauma/bsaver-dl/internal/cdn"
	"github.com/cristiangauma/bsaver-dl/internal/playlist"
	"github.com/cristiangauma/bsaver-dl/internal/shared"
	"github.com/cristiangauma/bsaver-dl/internal/tasks"
	"github.com/cristiangauma/bsaver-dl/internal/ui"
	"github.com/urfave/cli/v3"
)

// downloadFlags returns the flags shared by the root download action and the tui command.
func downloadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output directory (default: playlist title)",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   "config.toml",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
		},
		&cli.BoolFlag{
			Name:  "force-redownload",
			Usage: "Re-download files even if they already exist",
		},
	}
}

// prepare loads configuration and the playlist for a command invocation and
// resolves the destination directory: --output flag, then the configured
// directory, then the sanitized playlist title.
func (r *Runner) prepare(cmd *cli.Command) (*shared.Config, *playlist.Playlist, string, string, error) {
	path, err := playlistArg(cmd)
	if err != nil {
		return nil, nil, "", "", err
	}

	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	config, err := r.resolveConfig(cmd)
	if err != nil {
		return nil, nil, "", "", err
	}

	p, err := playlist.Load(path)
	if err != nil {
		return nil, nil, "", "", err
	}

	destDir := cmd.String("output")
	if destDir == "" {
		destDir = config.Output.Directory
	}
	if destDir == "" {
		destDir = shared.SafeTitle(p.DisplayTitle())
	}

	return config, p, path, destDir, nil
}

// newEngine wires a download engine against the configured CDN.
func (r *Runner) newEngine(config *shared.Config, logger *log.Logger) *tasks.DownloadEngine {
	client := cdn.NewClient(config.CDN, r.httpClient, logger)
	return tasks.NewDownloadEngine(client, logger)
}

// Download is the root action: parse the playlist, report status, and fetch
// every missing song sequentially.
func (r *Runner) Download(ctx context.Context, cmd *cli.Command) error {
	config, p, path, destDir, err := r.prepare(cmd)
	if err != nil {
		return err
	}

	logger := r.logger.With("run", shared.GenerateID())
	logger.Info("loading playlist", "path", path)

	r.writePlain("%s\n", ui.RenderPlaylistInfo(p))

	abs, err := filepath.Abs(destDir)
	if err != nil {
		abs = destDir
	}
	r.writePlain("📂 Output directory: %s\n", abs)

	force := cmd.Bool("force-redownload")

	rows, missing := tasks.Reconcile(p.Songs, destDir)
	if len(p.Songs) > 0 {
		r.writePlain("%s\n", ui.RenderStatusTable(rows))
	}
	if force {
		r.writePlain("🔄 Force redownload enabled - will redownload all songs\n")
		missing = p.Songs
	}

	engine := r.newEngine(config, logger)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.CopyPlaylist:
				r.writePlain("📄 %s\n", update.Message)
			case tasks.ExtractCover:
				r.writePlain("🖼️  %s\n", update.Message)
			case tasks.Download:
				r.writePlain("  %s\n", update.Message)
			}
		}
	}()

	result, err := engine.Run(ctx, progressCh, p, path, destDir, tasks.RunOpts{ForceRedownload: force})
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	if len(p.Songs) == 0 {
		r.writePlainln("⚠️  No songs found in playlist.")
		return nil
	}

	if len(missing) == 0 && !force {
		r.writePlainln("✨ All songs already present! Nothing to download. ✨")
		return nil
	}

	r.writePlain("\n%s\n", ui.RenderSummary(result))
	if result.Failed > 0 {
		r.writePlainln("⚠️  %d songs failed to download. Check your internet connection and try again.", result.Failed)
	}

	logger.Info("download complete",
		"successful", result.Successful,
		"failed", result.Failed,
		"skipped", result.Skipped,
		"total", result.Total,
	)

	return nil
}

// Cover extracts only the embedded cover image from a playlist.
func (r *Runner) Cover(ctx context.Context, cmd *cli.Command) error {
	_, p, _, destDir, err := r.prepare(cmd)
	if err != nil {
		return err
	}

	coverPath, err := playlist.ExtractCover(p, destDir)
	if err != nil {
		return fmt.Errorf("failed to extract cover image: %w", err)
	}
	if coverPath == "" {
		r.writePlainln("⚠️  No cover image found in playlist.")
		return nil
	}

	r.writePlain("🖼️  Saved cover image: %s\n", coverPath)
	return nil
}
