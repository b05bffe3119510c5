package domain

import (
	"errors"
	"strings"
)

var (
	ErrUnauthorized      = errors.New("not authorized")
	ErrInvalidToken      = errors.New("not authorized, token failed")
	ErrForbidden         = errors.New("not authorized as an admin")
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicateKey      = errors.New("duplicate field value entered")
	ErrInvalidTransition = errors.New("invalid status transition")
)

var (
	ErrBookingNotFound error = notFoundError("Booking")
	ErrContactNotFound error = notFoundError("Contact message")
	ErrUserNotFound    error = notFoundError("User")
)

// notFoundError names the missing entity and matches ErrNotFound.
type notFoundError string

func (e notFoundError) Error() string        { return string(e) + " not found" }
func (e notFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports one or more schema constraint violations.
type ValidationError struct {
	Fields []string
}

func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Fields: msgs}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, ", ")
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
