package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

var (
	ErrInvalidDateRange   = &Failure{Code: http.StatusBadRequest, Message: "Invalid date range"}
	ErrAdminRequired      = &Failure{Code: http.StatusUnauthorized, Message: "admin session required"}
	ErrInvalidCredentials = &Failure{Code: http.StatusUnauthorized, Message: "invalid password"}
	ErrRoomUnavailable    = &Failure{Code: http.StatusConflict, Message: "Room is already booked"}
	ErrBookingNotCreated  = &Failure{Code: http.StatusInternalServerError, Message: "Failed to create booking"}
	ErrMissingFields      = &Failure{Code: http.StatusBadRequest, Message: "Missing required fields"}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// MissingParam reports a required query or body parameter that was not sent.
func MissingParam(name string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("%s is required", name),
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsFailure reports whether err carries a Failure whose message is safe to show to clients.
func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}
