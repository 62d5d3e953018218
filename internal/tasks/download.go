package tasks

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cristiangauma/bsaver-dl/internal/playlist"
	"github.com/cristiangauma/bsaver-dl/internal/shared"
)

// Run executes a full batch download for the playlist into destDir.
//
// Steps: create destDir, copy the original playlist file (playlistPath may
// be empty to skip), extract the cover image (failures downgrade to a
// warning), reconcile against disk, then fetch each missing song
// sequentially. Per-song failures are counted and never abort the batch;
// partial files left by a failed download are removed. Context cancellation
// aborts the whole run with ctx.Err().
func (e *DownloadEngine) Run(
	ctx context.Context,
	progress chan<- ProgressUpdate,
	p *playlist.Playlist,
	playlistPath string,
	destDir string,
	opts RunOpts,
) (*DownloadResult, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: playlist is nil", shared.ErrInvalidInput)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &DownloadResult{Total: len(p.Songs)}

	if playlistPath != "" {
		copyPath, err := e.copyPlaylistFile(playlistPath, destDir)
		if err != nil {
			return nil, err
		}
		if copyPath != "" {
			result.PlaylistCopy = copyPath
			e.sendProgress(progress, playlistCopiedUpdate(copyPath))
		}
	}

	if coverPath, err := playlist.ExtractCover(p, destDir); err != nil {
		e.logger.Warn("failed to extract cover image", "err", err)
	} else if coverPath != "" {
		result.CoverPath = coverPath
		e.sendProgress(progress, coverSavedUpdate(coverPath))
	}

	rows, missing := Reconcile(p.Songs, destDir)
	result.StatusRows = rows

	if opts.ForceRedownload {
		missing = p.Songs
	}

	e.sendProgress(progress, reconcileUpdate(len(missing), len(p.Songs)))

	for i, song := range missing {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		step := i + 1
		outcome := SongOutcome{Song: song}

		if song.Hash == "" {
			e.logger.Warn("skipping song, no hash provided", "song", song.DisplayName())
			outcome.Outcome = OutcomeSkipped
			outcome.Err = shared.ErrMissingHash
			result.Skipped++
			result.Outcomes = append(result.Outcomes, outcome)
			e.sendProgress(progress, skippedUpdate(step, len(missing), song))
			continue
		}

		dest := filepath.Join(destDir, song.DiskName())
		url := e.fetcher.MapURL(song.Hash)

		e.sendProgress(progress, downloadingUpdate(step, len(missing), song))

		written, err := e.fetcher.Download(ctx, url, dest)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			e.removePartial(dest)
			e.logger.Error("failed to download song", "song", song.DisplayName(), "err", err)
			outcome.Outcome = OutcomeFailed
			outcome.Err = err
			result.Failed++
			result.Outcomes = append(result.Outcomes, outcome)
			e.sendProgress(progress, downloadFailedUpdate(step, len(missing), song, err))
			continue
		}

		outcome.Outcome = OutcomeSuccess
		outcome.Bytes = written
		result.Successful++
		result.BytesWritten += written
		result.Outcomes = append(result.Outcomes, outcome)
		e.sendProgress(progress, downloadedUpdate(step, len(missing), song, written))
	}

	e.sendProgress(progress, completeUpdate(result))

	return result, nil
}

// copyPlaylistFile copies the source playlist into destDir under its own
// name. Copying onto itself is skipped.
func (e *DownloadEngine) copyPlaylistFile(playlistPath, destDir string) (string, error) {
	copyPath := filepath.Join(destDir, filepath.Base(playlistPath))

	srcAbs, err := filepath.Abs(playlistPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve playlist path: %w", err)
	}
	dstAbs, err := filepath.Abs(copyPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve copy path: %w", err)
	}
	if srcAbs == dstAbs {
		return "", nil
	}

	src, err := os.Open(playlistPath)
	if err != nil {
		return "", fmt.Errorf("failed to open playlist file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(copyPath)
	if err != nil {
		return "", fmt.Errorf("failed to create playlist copy: %w", err)
	}

	_, err = io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("failed to copy playlist file: %w", err)
	}

	return copyPath, nil
}

// removePartial deletes a partially written archive left by a failed download.
func (e *DownloadEngine) removePartial(path string) {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			e.logger.Warn("failed to remove partial file", "path", path, "err", err)
		}
	}
}
