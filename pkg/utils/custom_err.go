package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrMissingFields    = errors.New("required fields are missing")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrStartDateInPast  = errors.New("start date is in the past")
	ErrTravelNotFound   = errors.New("travel not found")
	ErrNotFound         = errors.New("record not found")
	ErrForbidden        = errors.New("forbidden")
	ErrDatabaseError    = errors.New("database error")

	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrWeakPassword       = errors.New("password too short")
)

// ValidationError carries a user-facing message for a rejected request while
// still matching its sentinel through errors.Is.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

func NewValidationError(sentinel error, message string) error {
	return &ValidationError{Err: sentinel, Message: message}
}
