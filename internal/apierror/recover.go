package apierror

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RecoverConfig turns a panic into a 500 *Error and hands it back up the
// chain instead of invoking the error handler directly, so the request
// logger remains the single place that calls c.Error.
func RecoverConfig() middleware.RecoverConfig {
	return middleware.RecoverConfig{
		DisableErrorHandler: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			return FromPanic(err, stack)
		},
	}
}
