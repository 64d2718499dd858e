package health

import (
	"time"

	"github.com/gravity-ai/gravity-api/config"
	"github.com/gravity-ai/gravity-api/internal/common"
	"github.com/labstack/echo/v4"
)

type Response struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type Handler struct {
	version     string
	environment string
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		version:     cfg.Version,
		environment: cfg.Environment,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return common.SendSuccess(c, Response{
		Status:      "healthy",
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
		Version:     h.version,
		Environment: h.environment,
	})
}
