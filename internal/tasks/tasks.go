// package tasks implements playlist reconciliation and the batch download loop.
//
// The core abstraction is DownloadEngine, which diffs the songs a playlist
// references against the archives already on disk and fetches the missing
// subset, one song at a time. Operations emit progress updates via channels
// for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/cristiangauma/bsaver-dl/internal/playlist"
	"github.com/cristiangauma/bsaver-dl/internal/shared"
)

// Presence classifies a song against the destination directory.
type Presence int

const (
	PresenceMissing Presence = iota // Archive absent or empty on disk
	PresencePresent                 // Archive present with size > 0
	PresenceNoHash                  // Song carries no hash; nothing to look for
)

func (p Presence) String() string {
	switch p {
	case PresenceMissing:
		return "missing"
	case PresencePresent:
		return "present"
	case PresenceNoHash:
		return "no hash"
	default:
		return ""
	}
}

// Outcome is the terminal classification of one song in a batch run.
type Outcome int

const (
	OutcomeSuccess Outcome = iota // Archive downloaded
	OutcomeSkipped                // No hash, no network I/O attempted
	OutcomeFailed                 // Download failed after retries
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return ""
	}
}

// SongStatus is one reconciliation row, in playlist order.
type SongStatus struct {
	Index    int // 1-based position in the playlist
	Song     playlist.Song
	Presence Presence
}

// SongOutcome records the result of one download attempt in a batch.
type SongOutcome struct {
	Song    playlist.Song
	Outcome Outcome
	Bytes   int64 // Bytes written on success
	Err     error // Failure cause, nil on success
}

// DownloadResult contains all data from a batch run.
type DownloadResult struct {
	StatusRows   []SongStatus  // Reconciliation rows for every song
	Outcomes     []SongOutcome // One entry per song the loop visited
	Successful   int           // Downloads that completed
	Failed       int           // Downloads that failed after retries
	Skipped      int           // Songs without a hash
	Total        int           // Songs in the playlist
	BytesWritten int64         // Total bytes fetched
	CoverPath    string        // Saved cover image, empty when none
	PlaylistCopy string        // Copy of the playlist file in the destination
}

// RunOpts contains options for a batch run.
type RunOpts struct {
	ForceRedownload bool // Treat every song as missing, bypassing reconciliation
}

// Fetcher abstracts the CDN client so the engine can be tested without a network.
type Fetcher interface {
	// MapURL builds the archive URL for a song hash.
	MapURL(hash string) string

	// Download fetches url into dest. A nil error means the full body was written.
	Download(ctx context.Context, url, dest string) (int64, error)
}

// DownloadEngine orchestrates a playlist download: copy the playlist file,
// extract the cover, reconcile, then fetch missing songs sequentially.
type DownloadEngine struct {
	fetcher Fetcher
	logger  *log.Logger
}

// NewDownloadEngine creates a DownloadEngine with the provided fetcher.
func NewDownloadEngine(fetcher Fetcher, logger *log.Logger) *DownloadEngine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &DownloadEngine{fetcher: fetcher, logger: logger}
}

// Reconcile partitions songs into present and missing against destDir.
//
// A song is present iff <destDir>/<lowercase-hash>.zip exists with size > 0.
// Songs without a hash are classified distinctly and never enter the missing
// list. Row and missing-list order equal playlist order; duplicate hashes are
// not collapsed. Reconcile only reads filesystem state.
func Reconcile(songs []playlist.Song, destDir string) ([]SongStatus, []playlist.Song) {
	rows := make([]SongStatus, 0, len(songs))
	missing := []playlist.Song{}

	for i, song := range songs {
		row := SongStatus{Index: i + 1, Song: song}

		if song.Hash == "" {
			row.Presence = PresenceNoHash
		} else if present(filepath.Join(destDir, song.DiskName())) {
			row.Presence = PresencePresent
		} else {
			row.Presence = PresenceMissing
			missing = append(missing, song)
		}

		rows = append(rows, row)
	}

	return rows, missing
}

// present reports whether path exists as a non-empty file.
func present(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > 0
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *DownloadEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}

	select {
	case progress <- update:
	default:
	}
}
