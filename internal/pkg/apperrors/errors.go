// Package apperrors defines the application error taxonomy and its mapping
// to HTTP status codes. Handlers translate these at the response boundary;
// everything below returns them wrapped with %w.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Authentication and authorization errors. The access gate downgrades all
// of these to an anonymous request; only the route's role rule turns them
// into a user-visible 401/403.
var (
	ErrTokenMalformed   = errors.New("token malformed")
	ErrTokenExpired     = errors.New("token expired")
	ErrBadSignature     = errors.New("token signature invalid")
	ErrUnknownIdentity  = errors.New("unknown identity")
	ErrIdentityMismatch = errors.New("identity mismatch")
	ErrUnknownRole      = errors.New("unknown role")
	ErrForbidden        = errors.New("forbidden")
)

// Domain errors.
var (
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
	ErrConflict          = errors.New("version conflict")
	ErrNotFound          = errors.New("not found")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsAuthError reports whether err belongs to the authentication taxonomy.
func IsAuthError(err error) bool {
	for _, target := range []error{
		ErrTokenMalformed, ErrTokenExpired, ErrBadSignature,
		ErrUnknownIdentity, ErrIdentityMismatch, ErrUnknownRole,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// HTTPStatus maps an error to the status code surfaced to the client.
func HTTPStatus(err error) int {
	var ve *ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	case IsAuthError(err):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
