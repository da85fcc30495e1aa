package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Code identifies the error kind; two AppErrors with the same Code match under errors.Is.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *AppError of the same kind.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Webhook signature verification (SIG) ----

func ErrMissingTimestamp() *AppError {
	return New("SIG_001", "Missing request timestamp header", http.StatusBadRequest)
}

// ErrInvalidTimestamp reports an unparseable or non-positive timestamp; cause may be nil.
func ErrInvalidTimestamp(cause error) *AppError {
	return Wrap("SIG_002", "Invalid request timestamp", http.StatusBadRequest, cause)
}

func ErrMissingSignature() *AppError {
	return New("SIG_003", "Missing signature header", http.StatusUnauthorized)
}

func ErrSignatureMismatch() *AppError {
	return New("SIG_004", "Invalid signature", http.StatusUnauthorized)
}

func ErrRequestExpired() *AppError {
	return New("SIG_005", "Request timestamp expired", http.StatusUnauthorized)
}

func ErrReplayedRequest() *AppError {
	return New("SIG_006", "Request has already been processed", http.StatusForbidden)
}

// ---- Request handling (REQ) ----

func ErrBodyRead(err error) *AppError {
	return Wrap("REQ_001", "Cannot read request body", http.StatusBadRequest, err)
}

func ErrBodyTooLarge(err error) *AppError {
	return Wrap("REQ_002", "Request body too large", http.StatusRequestEntityTooLarge, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
