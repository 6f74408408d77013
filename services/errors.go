package services

import "errors"

// Sentinel errors returned by the services. Controllers translate them into
// HTTP statuses; anything else is an infrastructure failure (500).
var (
	ErrNotFound = errors.New("record not found")

	// ErrConflict covers the booking interval overlap as well as duplicate
	// attendee and duplicate room-feature writes (409).
	ErrConflict = errors.New("conflict")

	// ErrValidation marks client-correctable input problems (400/422).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned on login failure (401).
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries a field-level message while still matching
// ErrValidation with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
