package planner

import "net/http"

type ErrorCode string

const (
	ErrorCodeValidation         ErrorCode = "VALIDATION_ERROR"
	ErrorCodeTimeParse          ErrorCode = "TIME_PARSE_ERROR"
	ErrorCodeTrafficUnavailable ErrorCode = "TRAFFIC_UNAVAILABLE"
	ErrorCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrorCodeInternalFailure    ErrorCode = "INTERNAL_FAILURE"
)

// AppError is the categorical error surfaced at the HTTP boundary. The
// presentation layer maps Code to user guidance; cause is kept only for
// logs, never rendered.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewValidationError(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: ErrorCodeValidation, Message: msg}
}

func NewTimeParseError(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: ErrorCodeTimeParse, Message: msg}
}

func NewTrafficUnavailableError(cause error) *AppError {
	return &AppError{
		Status:  http.StatusBadGateway,
		Code:    ErrorCodeTrafficUnavailable,
		Message: "Failed to get traffic estimate",
		cause:   cause,
	}
}

func NewNotFoundError(msg string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: ErrorCodeNotFound, Message: msg}
}
