package api

import "fmt"

// Error is a non-2xx API response: the HTTP status plus the best-effort
// human-readable message, server-provided when available and the operation's
// fallback otherwise. 401 responses are not surfaced as *Error; they map to
// common.ErrUnauthorized after local invalidation.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}
