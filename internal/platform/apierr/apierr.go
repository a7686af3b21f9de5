package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation         = "validation_error"
	CodeUnauthorized       = "unauthorized"
	CodeConflict           = "conflict"
	CodeNotFound           = "not_found"
	CodeStoreUnavailable   = "store_unavailable"
	CodeStoreRequestFailed = "store_request_failed"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(err error) *Error {
	return New(http.StatusBadRequest, CodeValidation, err)
}

func Validationf(format string, args ...interface{}) *Error {
	return Validation(fmt.Errorf(format, args...))
}

func Unauthorized(err error) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, err)
}

func Conflict(err error) *Error {
	return New(http.StatusConflict, CodeConflict, err)
}

func NotFound(err error) *Error {
	return New(http.StatusNotFound, CodeNotFound, err)
}

// StoreUnavailable marks a store call that never left the process because
// connection configuration is missing.
func StoreUnavailable(err error) *Error {
	return New(http.StatusInternalServerError, CodeStoreUnavailable, err)
}

// StoreRequestFailed marks a store call that reached the remote service and
// failed there (network, auth, quota).
func StoreRequestFailed(err error) *Error {
	return New(http.StatusInternalServerError, CodeStoreRequestFailed, err)
}

// IsCode reports whether err is (or wraps) an *Error carrying the given code.
func IsCode(err error, code string) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}

// IsStoreFailure reports whether err is a store outage of either kind, the
// condition that triggers fallback on public read paths.
func IsStoreFailure(err error) bool {
	return IsCode(err, CodeStoreUnavailable) || IsCode(err, CodeStoreRequestFailed)
}
