package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GenericResponse is the envelope of the AI endpoints.
type GenericResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func SendSuccess(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

func SendGeneric(c echo.Context, message string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	return SendSuccess(c, GenericResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}
