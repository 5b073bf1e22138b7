package error

import (
	"errors"
	"fmt"
	"strings"
)

// Base error types
var (
	// ErrInvalidUserID is returned when a user identifier is not a non-negative integer
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidTransactionID is returned when a transaction identifier is not a non-negative integer
	ErrInvalidTransactionID = errors.New("invalid transaction ID")

	// ErrValidation is returned when a create request is missing required fields
	ErrValidation = errors.New("all fields are required")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrRateLimited is returned when a client has exceeded its request quota
	ErrRateLimited = errors.New("too many requests")

	// ErrRateLimiterUnavailable is returned when the remote rate limiter cannot be reached
	ErrRateLimiterUnavailable = errors.New("rate limiter unavailable")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ValidationError carries the list of missing create fields
type ValidationError struct {
	Missing []string
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: missing %s", ErrValidation.Error(), strings.Join(e.Missing, ", "))
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a validation error for the given missing fields
func NewValidationError(missing ...string) error {
	return &ValidationError{Missing: missing}
}

// IsInvalidIdentifierError checks if the error is a malformed identifier error
func IsInvalidIdentifierError(err error) bool {
	return errors.Is(err, ErrInvalidUserID) || errors.Is(err, ErrInvalidTransactionID)
}

// IsValidationError checks if the error is a create-field validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound)
}

// IsRateLimitedError checks if the error is a quota rejection
func IsRateLimitedError(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
