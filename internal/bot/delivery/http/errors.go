package http

import "errors"

// Transport-level validation errors. These belong to the HTTP boundary, not
// the engine: the engine itself accepts any string.
var (
	errMessageRequired   = errors.New("message is required")
	errMessageTooLong    = errors.New("message exceeds maximum length")
	errSessionIDRequired = errors.New("session_id is required")
	errSessionNotFound   = errors.New("session not found")
)
