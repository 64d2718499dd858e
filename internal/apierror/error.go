// Package apierror defines the error value route handlers return and the
// centralized echo error handler that turns any error into the JSON envelope
//
//	{"error": {"message": ..., "code": ..., "timestamp": ..., "stack": ...}}
//
// Resolution rules: a missing or non-positive status becomes 500 and an empty
// message becomes DefaultMessage. In production a 500 is always answered with
// DefaultMessage and the stack is never sent; the log record keeps both.
package apierror

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

const DefaultMessage = "Internal Server Error"

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// Error is immutable once built. The stack is captured at construction.
type Error struct {
	Message    string
	StatusCode int
	Code       string
	cause      error
	stack      string
}

func New(status int, code, message string) *Error {
	return &Error{
		Message:    message,
		StatusCode: status,
		Code:       code,
		cause:      pkgerrors.New(message),
	}
}

// Wrap keeps err as the cause. The stack of err is reused when it has one.
func Wrap(err error, status int, code, message string) *Error {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &Error{
		Message:    message,
		StatusCode: status,
		Code:       code,
		cause:      withStack(err),
	}
}

// FromPanic builds a 500 from a recovered panic and the goroutine stack
// captured by the recover middleware.
func FromPanic(err error, stack []byte) *Error {
	return &Error{
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternal,
		cause:      err,
		stack:      string(stack),
	}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, "", message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, CodeNotFound, message)
}

func Internal(err error) *Error {
	return Wrap(err, http.StatusInternalServerError, CodeInternal, "")
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Stack() string {
	if e.stack != "" {
		return e.stack
	}
	return StackOf(e.cause)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackOf renders the first recorded stack found in err's chain, or "" when
// no error in the chain carries one.
func StackOf(err error) string {
	var st stackTracer
	if err == nil || !errors.As(err, &st) {
		return ""
	}
	return fmt.Sprintf("%+v", st)
}

func withStack(err error) error {
	if err == nil {
		return pkgerrors.New(DefaultMessage)
	}
	var st stackTracer
	if errors.As(err, &st) {
		return err
	}
	return pkgerrors.WithStack(err)
}
