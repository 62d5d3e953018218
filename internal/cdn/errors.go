package cdn

import (
	"errors"
	"fmt"
)

// StatusError represents a non-200 response from the CDN.
type StatusError struct {
	URL  string // Requested URL
	Code int    // HTTP status code
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Code, e.URL)
}

// Permanent reports whether the status means the resource will never appear,
// so retrying is pointless. 404 Not Found and 410 Gone qualify.
func (e *StatusError) Permanent() bool {
	return e.Code == 404 || e.Code == 410
}

// IsPermanent reports whether err is a permanent CDN failure.
func IsPermanent(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Permanent()
}
