package apierror

import (
	"net/http"
	"time"

	"github.com/gravity-ai/gravity-api/config"
	"github.com/gravity-ai/gravity-api/internal/logging"
	"github.com/gravity-ai/gravity-api/internal/metrics"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TimestampLayout matches ISO-8601 with millisecond precision in UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Body struct {
	Error Detail `json:"error"`
}

type Detail struct {
	Message   string  `json:"message"`
	Code      string  `json:"code,omitempty"`
	Timestamp string  `json:"timestamp"`
	Stack     *string `json:"stack,omitempty"`
}

type Handler struct {
	logger     *logging.Logger
	production bool
	now        func() time.Time
}

func NewHandler(logger *logging.Logger, cfg *config.Config) *Handler {
	return &Handler{
		logger:     logger,
		production: cfg.IsProduction(),
		now:        time.Now,
	}
}

// Handle is installed as echo's HTTPErrorHandler. It logs once and then
// always attempts exactly one response.
func (h *Handler) Handle(err error, c echo.Context) {
	resolved := Resolve(err)

	h.log(resolved, c)
	metrics.APIErrors.WithLabelValues(metrics.StatusLabel(resolved.StatusCode), resolved.Code).Inc()

	if c.Response().Committed {
		return
	}

	body := h.Body(resolved)

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(resolved.StatusCode)
	} else {
		writeErr = c.JSON(resolved.StatusCode, body)
	}
	if writeErr != nil {
		h.logger.Warn("failed to write error response", zap.Error(writeErr))
	}
}

// Body builds the client-visible envelope for an already resolved error.
func (h *Handler) Body(r Resolved) Body {
	message := r.Message
	if r.StatusCode == http.StatusInternalServerError && h.production {
		message = DefaultMessage
	}

	detail := Detail{
		Message:   message,
		Code:      r.Code,
		Timestamp: h.now().UTC().Format(TimestampLayout),
	}
	if !h.production {
		stack := r.Stack
		detail.Stack = &stack
	}
	return Body{Error: detail}
}

func (h *Handler) log(r Resolved, c echo.Context) {
	defer func() {
		_ = recover()
	}()

	req := c.Request()
	url := req.RequestURI
	if url == "" {
		url = req.URL.String()
	}

	fields := []zap.Field{
		logging.Err(logging.ErrorInfo{
			Message: r.RawMessage,
			Stack:   r.Stack,
			Code:    r.Code,
		}),
		logging.Request(logging.RequestInfo{
			Method:    req.Method,
			URL:       url,
			UserAgent: req.UserAgent(),
			IP:        c.RealIP(),
		}),
		logging.StatusCode(r.StatusCode),
	}
	if requestID, ok := c.Get(logging.RequestIDContextKey).(string); ok {
		fields = append(fields, logging.RequestID(requestID))
	}

	h.logger.Error("API Error", fields...)
}
