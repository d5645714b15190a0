package services

import "errors"

var (
	// ErrNotFound means the referenced id resolved to no record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so login failures never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicate means a unique constraint (username, slug) rejected a write.
	ErrDuplicate = errors.New("already exists")
)

// ValidationError carries a human-readable field-level failure and maps to
// HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
