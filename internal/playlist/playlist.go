// package playlist defines the .bplist domain model and its parser.
//
// A .bplist file is a JSON object exported from BeatSaver describing a named
// collection of songs, each identified by a content hash, with an optional
// base64-embedded cover image.
package playlist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cristiangauma/bsaver-dl/internal/shared"
)

// Playlist represents a parsed .bplist file. Records are read-only after
// parse; fields with missing values keep their zero value and are defaulted
// at the consumption site via the Display accessors.
type Playlist struct {
	Title       string `json:"playlistTitle"`
	Author      string `json:"playlistAuthor"`
	Description string `json:"playlistDescription"`
	Songs       []Song `json:"songs"`
	CoverBase64 string `json:"image"`
}

// Song is one entry in a playlist. The hash identifies the song archive on
// the CDN; it may be empty, in which case the song cannot be downloaded.
type Song struct {
	Hash string `json:"hash"`
	Name string `json:"songName"`
}

// DisplayTitle returns the playlist title, or "Untitled Playlist" when unset.
func (p *Playlist) DisplayTitle() string {
	if p.Title == "" {
		return "Untitled Playlist"
	}
	return p.Title
}

// DisplayAuthor returns the playlist author, or "Unknown" when unset.
func (p *Playlist) DisplayAuthor() string {
	if p.Author == "" {
		return "Unknown"
	}
	return p.Author
}

// DisplayName returns the song name, or "Unknown" when unset.
func (s Song) DisplayName() string {
	if s.Name == "" {
		return "Unknown"
	}
	return s.Name
}

// NormalizedHash returns the song hash lowercased. Two songs with the same
// hash map to the same on-disk artifact regardless of name.
func (s Song) NormalizedHash() string {
	return strings.ToLower(s.Hash)
}

// DiskName returns the archive filename for the song, "<lowercase-hash>.zip".
func (s Song) DiskName() string {
	return s.NormalizedHash() + ".zip"
}

// Load reads and parses a .bplist file.
//
// Errors wrap [shared.ErrPlaylistParse]: missing path, path not a regular
// file, content not valid UTF-8, content not valid JSON, or a top-level
// value that is not a JSON object. A missing "songs" key is NOT an error;
// it normalizes to an empty slice.
func Load(path string) (*Playlist, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: playlist file not found: %s", shared.ErrPlaylistParse, path)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: path is not a file: %s", shared.ErrPlaylistParse, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read playlist file: %v", shared.ErrPlaylistParse, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: playlist file is not valid UTF-8", shared.ErrPlaylistParse)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: playlist file must contain a JSON object", shared.ErrPlaylistParse)
	}

	var p Playlist
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON in playlist file: %v", shared.ErrPlaylistParse, err)
	}

	if p.Songs == nil {
		p.Songs = []Song{}
	}

	return &p, nil
}
