package apierror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Resolved is what the error handler knows about an error after applying the
// default status and message rules.
type Resolved struct {
	StatusCode int
	Message    string
	// RawMessage is the error's own message, possibly empty.
	RawMessage string
	Code       string
	Stack      string
}

func Resolve(err error) Resolved {
	var r Resolved

	var apiErr *Error
	var httpErr *echo.HTTPError
	switch {
	case err == nil:
	case errors.As(err, &apiErr):
		r.StatusCode = apiErr.StatusCode
		r.RawMessage = apiErr.Message
		r.Code = apiErr.Code
		r.Stack = apiErr.Stack()
	case errors.As(err, &httpErr):
		r.StatusCode = httpErr.Code
		r.RawMessage = httpErrorMessage(httpErr)
		r.Stack = StackOf(httpErr.Internal)
	default:
		r.RawMessage = err.Error()
		r.Stack = StackOf(err)
	}

	if r.StatusCode <= 0 {
		r.StatusCode = http.StatusInternalServerError
	}

	r.Message = r.RawMessage
	if r.Message == "" {
		r.Message = DefaultMessage
	}
	return r
}

func httpErrorMessage(he *echo.HTTPError) string {
	switch m := he.Message.(type) {
	case nil:
		return ""
	case string:
		return m
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}
