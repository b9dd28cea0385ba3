package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound            = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation          = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal            = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrInvalidAccessCode   = New("INVALID_ACCESS_CODE", http.StatusUnauthorized, "invalid access code")
	ErrRecordFrozen        = New("RECORD_FROZEN", http.StatusConflict, "progress record is under review or approved")
	ErrMissionIncomplete   = New("MISSION_INCOMPLETE", http.StatusPreconditionFailed, "not all missions are completed")
	ErrProjectLocked       = New("PROJECT_LOCKED", http.StatusForbidden, "project already selected; teacher authorization required")
	ErrTeamNotFound        = New("TEAM_NOT_FOUND", http.StatusNotFound, "team not found for that group and member")
	ErrFeedbackUnavailable = New("FEEDBACK_UNAVAILABLE", http.StatusBadGateway, "mentor feedback service is unavailable")
	ErrUploadTooLarge      = New("UPLOAD_TOO_LARGE", http.StatusRequestEntityTooLarge, "file exceeds the maximum allowed size")
	ErrUnsupportedFile     = New("UNSUPPORTED_FILE_TYPE", http.StatusUnsupportedMediaType, "file type is not allowed")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
