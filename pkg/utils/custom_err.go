package utils

import "errors"

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrGenerationNotConfigured = errors.New("generation model credential is not configured")
	ErrPersonaNotFound         = errors.New("persona not found")
	ErrItineraryNotFound       = errors.New("itinerary not found")
	ErrDatabaseError           = errors.New("database error")
	ErrRateLimited             = errors.New("too many planning requests")

	// ErrNoResult is returned by providers when a call succeeds but yields nothing.
	ErrNoResult = errors.New("provider returned no result")
)

// ValidationError carries the field that failed request validation. It matches
// ErrInvalidInput with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
