package tasks

import (
	"fmt"

	"github.com/cristiangauma/bsaver-dl/internal/playlist"
	"github.com/dustin/go-humanize"
)

// ProgressUpdate represents a progress event during a batch run.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	CopyPlaylist Phase = iota
	ExtractCover
	Compare
	Download
	Complete
)

func (p Phase) String() string {
	switch p {
	case CopyPlaylist:
		return "copy_playlist"
	case ExtractCover:
		return "extract_cover"
	case Compare:
		return "compare"
	case Download:
		return "download"
	case Complete:
		return "complete"
	default:
		return ""
	}
}

func playlistCopiedUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CopyPlaylist,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Copied playlist file: %s", path),
	}
}

func coverSavedUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExtractCover,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Saved cover image: %s", path),
	}
}

func reconcileUpdate(missing, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Compare,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("%d of %d songs missing", missing, total),
	}
}

func downloadingUpdate(step, total int, song playlist.Song) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Download,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Downloading: %s...", step, total, song.DisplayName()),
	}
}

func downloadedUpdate(step, total int, song playlist.Song, bytes int64) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Download,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%s)", step, total, song.DisplayName(), humanize.Bytes(uint64(bytes))),
	}
}

func downloadFailedUpdate(step, total int, song playlist.Song, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Download,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, song.DisplayName(), err),
	}
}

func skippedUpdate(step, total int, song playlist.Song) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Download,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: no hash", step, total, song.DisplayName()),
	}
}

func completeUpdate(result *DownloadResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Complete,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("%d successful, %d failed", result.Successful, result.Failed),
		Data:    result,
	}
}
