package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned on HTTP 401. Terminal at the job level;
	// re-authentication must happen upstream.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrForbidden is returned on HTTP 403. Treated like ErrUnauthorized.
	ErrForbidden = errors.New("client forbidden")
	// ErrNotFound is returned on HTTP 404. For deletes this means "already
	// gone" and is treated as success by the sync engine.
	ErrNotFound = errors.New("resource not found")
)

// StatusError carries a non-2xx HTTP status that maps to no sentinel.
// The job runner inspects Code to separate retryable 5xx responses from
// per-record 4xx application errors.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Body)
}

// IsAuthError reports whether err represents an authentication failure
// (401/403), which is terminal for a sync job.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}
