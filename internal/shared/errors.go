package shared

import "fmt"

var (
	// Playlist errors
	ErrPlaylistParse = fmt.Errorf("playlist parse failed")
	ErrMissingHash   = fmt.Errorf("song has no hash")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Download errors
	ErrDownloadFailed = fmt.Errorf("download failed")
	ErrTimeout        = fmt.Errorf("operation timed out")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
