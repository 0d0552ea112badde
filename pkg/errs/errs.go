// Package errs holds the error categories shared by every domain. Callers wrap
// them with context and the HTTP layer maps them to status codes with errors.Is.
package errs

import "errors"

var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a lookup that matched no record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidOrExpiredToken is returned for unknown and expired verification
	// tokens alike.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	// ErrUpstream marks a failure of the database or of an external API.
	ErrUpstream = errors.New("upstream service error")
	// ErrInvalidCandidate is returned by the matcher when a mentor profile
	// arrives without its user record.
	ErrInvalidCandidate = errors.New("invalid candidate")
)
