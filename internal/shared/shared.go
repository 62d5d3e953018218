// package shared defines shared helpers
package shared

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const (
	// DefaultReplacement substitutes characters that are illegal in filenames.
	DefaultReplacement = "_"
	// DefaultMaxFilename caps sanitized filename length.
	DefaultMaxFilename = 200
	// FallbackFilename is returned when sanitization leaves nothing usable.
	FallbackFilename = "untitled"
)

// NewLogger creates a new [log.Logger] instance with the specified [io.Writer], with timestamps and caller reporting enabled.
//
// The writer defaults to [os.Stderr]
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true, ReportCaller: true}
	return log.NewWithOptions(w, opts)
}

// NewFileLogger creates a [log.Logger] writing to the given file path, creating parent directories as needed.
//
// Used by the TUI so log lines never interleave with the alternate screen.
func NewFileLogger(path string) (*log.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return NewLogger(f), nil
}

// SetLogLevel sets the [log.Level] for the given [log.Logger].
func SetLogLevel(l *log.Logger, ll log.Level) {
	l.SetLevel(ll)
}

// GenerateID generates a new v4 [uuid.UUID] as a string
func GenerateID() string {
	return uuid.New().String()
}

// illegalChars matches characters rejected by at least one major filesystem:
// Windows reserved punctuation plus ASCII control characters.
var (
	illegalChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// SafeFilename sanitizes a string so it is usable as a filename on Windows,
// macOS and Linux. Illegal characters are substituted with replacement,
// whitespace runs are collapsed, and leading/trailing dots and spaces are
// trimmed. Inputs that sanitize to nothing yield [FallbackFilename]. Results
// longer than maxLength are truncated, preserving a trailing extension when
// one exists.
func SafeFilename(name, replacement string, maxLength int) string {
	if name == "" {
		return FallbackFilename
	}

	sanitized := illegalChars.ReplaceAllString(name, replacement)
	sanitized = strings.TrimSpace(spaceRuns.ReplaceAllString(sanitized, " "))
	sanitized = strings.Trim(sanitized, ". ")

	if sanitized == "" {
		return FallbackFilename
	}

	if len(sanitized) > maxLength {
		if idx := strings.LastIndex(sanitized, "."); idx > 0 {
			ext := sanitized[idx+1:]
			namePart := sanitized[:idx]
			cut := maxLength - len(ext) - 1
			if cut < 0 {
				cut = 0
			}
			if cut > len(namePart) {
				cut = len(namePart)
			}
			sanitized = namePart[:cut] + "." + ext
		} else {
			sanitized = sanitized[:maxLength]
		}
	}

	return sanitized
}

// SafeTitle sanitizes a playlist title with the default replacement and length limit.
func SafeTitle(name string) string {
	return SafeFilename(name, DefaultReplacement, DefaultMaxFilename)
}
