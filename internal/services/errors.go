package services

import "errors"

// Domain error kinds surfaced to the HTTP layer. Anything else escaping a
// service is a store failure and maps to a generic server error.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports client-caused input problems (empty after trim,
// out-of-range lengths, malformed values).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
