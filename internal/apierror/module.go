package apierror

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewHandler),
	fx.Invoke(Register),
)

// Register makes h the terminal error stage for every route on e.
func Register(e *echo.Echo, h *Handler) {
	e.HTTPErrorHandler = h.Handle
}
