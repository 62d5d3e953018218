package playlist

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Image format magic bytes
var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 'P', 'N', 'G'}
	gifMagic  = []byte("GIF8")
)

// coverExt detects the image format from the first bytes of the payload.
// Unknown formats fall back to jpg.
func coverExt(data []byte) string {
	switch {
	case bytes.HasPrefix(data, jpegMagic):
		return "jpg"
	case bytes.HasPrefix(data, pngMagic):
		return "png"
	case bytes.HasPrefix(data, gifMagic):
		return "gif"
	default:
		return "jpg"
	}
}

// ExtractCover decodes the playlist's embedded base64 cover image and writes
// it to <destDir>/cover.<ext>, creating destDir when absent. A playlist
// without an image payload is a silent no-op returning ("", nil). Decode and
// write failures are returned for the caller to downgrade to a warning; they
// must never abort a run.
func ExtractCover(p *Playlist, destDir string) (string, error) {
	if p.CoverBase64 == "" {
		return "", nil
	}

	// BeatSaver exports sometimes carry a data URI prefix.
	payload := p.CoverBase64
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode cover image: %w", err)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(destDir, "cover."+coverExt(data))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write cover image: %w", err)
	}

	return path, nil
}
