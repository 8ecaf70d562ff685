package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidStateTransition indicates the record's current status does not allow the requested transition.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// ErrInsufficientStock indicates a stock movement exceeds the quantity available at its source.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrConflict indicates the record was modified by another writer (version mismatch).
var ErrConflict = errors.New("resource was modified concurrently")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to act.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP-ish status code and a user-facing message while
// still unwrapping to one of the sentinels above.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewValidationFailedError returns an AppError that matches ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewConflictError returns an AppError that matches ErrDuplicate.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

// NewInvalidTransitionError returns an AppError that matches ErrInvalidStateTransition.
func NewInvalidTransitionError(entity, from, action string) *AppError {
	return NewAppError(http.StatusConflict,
		fmt.Sprintf("cannot %s %s in status %q", action, entity, from),
		ErrInvalidStateTransition)
}

// NewInsufficientStockError returns an AppError that matches ErrInsufficientStock.
func NewInsufficientStockError(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, ErrInsufficientStock)
}

// NewVersionConflictError returns an AppError that matches ErrConflict.
func NewVersionConflictError(entity, id string) *AppError {
	return NewAppError(http.StatusConflict, entity+" "+id+" was modified by another request", ErrConflict)
}

// StatusCode maps an error chain to the HTTP status a handler should answer with.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConflict), errors.Is(err, ErrInvalidStateTransition):
		return http.StatusConflict
	case errors.Is(err, ErrInsufficientStock):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
