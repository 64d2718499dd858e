package ai

import (
	"github.com/gravity-ai/gravity-api/internal/common"
	"github.com/gravity-ai/gravity-api/internal/validation"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) Webhook(c echo.Context) error {
	var req WebhookRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}
	return common.SendGeneric(c, "WhatsApp webhook processed", h.service.ProcessWebhook(req))
}

func (h *Handler) Embed(c echo.Context) error {
	var req EmbedRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}
	return common.SendGeneric(c, "Embeddings created successfully", h.service.Embed(req))
}

func (h *Handler) Ask(c echo.Context) error {
	var req AskRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}
	return common.SendGeneric(c, "Question answered successfully", h.service.Ask(req))
}

func (h *Handler) RunInsights(c echo.Context) error {
	var req InsightsRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return err
	}
	return common.SendGeneric(c, "Insights analysis completed", h.service.RunInsights(req))
}
