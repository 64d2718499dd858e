package apierror

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapturesStack(t *testing.T) {
	err := New(http.StatusNotFound, CodeNotFound, "Not found")

	assert.Equal(t, "Not found", err.Error())
	assert.Contains(t, err.Stack(), "TestNewCapturesStack")
}

func TestWrapKeepsCauseAndExistingStack(t *testing.T) {
	cause := pkgerrors.New("db timeout")
	err := Wrap(cause, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "db timeout", err.Message)
	assert.Equal(t, StackOf(cause), err.Stack())
}

func TestWrapAddsStackToPlainErrors(t *testing.T) {
	err := Wrap(io.ErrUnexpectedEOF, http.StatusBadRequest, CodeValidation, "Invalid request body")

	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, "Invalid request body", err.Error())
	assert.NotEmpty(t, err.Stack())
}

func TestFromPanicUsesRecoveredStack(t *testing.T) {
	err := FromPanic(errors.New("kaboom"), []byte("goroutine 1 [running]:"))

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.Equal(t, "kaboom", err.Message)
	assert.Equal(t, "goroutine 1 [running]:", err.Stack())
}

func TestStackOfPlainError(t *testing.T) {
	assert.Empty(t, StackOf(errors.New("plain")))
	assert.Empty(t, StackOf(nil))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantCode    string
	}{
		{"plain error defaults to 500", errors.New("DB timeout"), 500, "DB timeout", ""},
		{"api error keeps status and code", New(404, "NOT_FOUND", "Not found"), 404, "Not found", "NOT_FOUND"},
		{"zero status defaults to 500", New(0, "", "oops"), 500, "oops", ""},
		{"negative status defaults to 500", New(-1, "", "oops"), 500, "oops", ""},
		{"empty message falls back", New(400, "", ""), 400, DefaultMessage, ""},
		{"wrapped api error", pkgerrors.Wrap(New(409, "CONFLICT", "exists"), "create"), 409, "exists", "CONFLICT"},
		{"echo http error", echo.ErrNotFound, 404, "Not Found", ""},
		{"echo http error with error message", echo.NewHTTPError(400, errors.New("bad json")), 400, "bad json", ""},
		{"nil error", nil, 500, DefaultMessage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(tt.err)
			assert.Equal(t, tt.wantStatus, r.StatusCode)
			assert.Equal(t, tt.wantMessage, r.Message)
			assert.Equal(t, tt.wantCode, r.Code)
		})
	}
}

func TestResolveKeepsRawMessage(t *testing.T) {
	r := Resolve(New(400, "", ""))
	require.Empty(t, r.RawMessage)
	assert.Equal(t, DefaultMessage, r.Message)
}
