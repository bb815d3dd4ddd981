package booking

import (
	"errors"
	"fmt"
)

// Error codes for the recoverable booking outcomes. None of these are fatal;
// callers are expected to surface them and let the user act again.
const (
	CodeNotFound          = "notFound"
	CodeConflict          = "conflict"
	CodeInvalidTransition = "invalidTransition"
	CodeValidation        = "validationError"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

// NewConflictError marks a slot that was already reserved at the moment of
// the atomic check. Retrying the same slot is never useful; the caller must
// re-fetch availability and choose again.
func NewConflictError(msg string) error {
	return &BookingError{Code: CodeConflict, Message: msg}
}

func NewInvalidTransitionError(msg string) error {
	return &BookingError{Code: CodeInvalidTransition, Message: msg}
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

// CodeOf returns the booking error code carried by err, or "" for errors
// outside the taxonomy.
func CodeOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
