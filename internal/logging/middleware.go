package logging

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	RequestIDHeader     = "X-Request-ID"
	RequestIDContextKey = "request_id"
)

// RequestLoggingMiddleware emits "Incoming request" before the handler chain
// runs and exactly one completion record after it returns. Errors from the
// chain are handed to the HTTP error handler here, so the completion record
// sees the final status, and are not returned upstream.
//
// A request whose client went away before the chain finished is logged as
// "Request aborted" at warn level instead of "Request completed".
func RequestLoggingMiddleware(logger *Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if logger == nil {
				return next(c)
			}

			start := time.Now()
			req := c.Request()

			requestID := req.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
				req.Header.Set(RequestIDHeader, requestID)
			}
			c.Response().Header().Set(RequestIDHeader, requestID)
			c.Set(RequestIDContextKey, requestID)

			sourceIP := c.RealIP()

			logger.Info("Incoming request",
				RequestID(requestID),
				Request(RequestInfo{
					Method:        req.Method,
					Path:          req.URL.Path,
					UserAgent:     req.UserAgent(),
					IP:            sourceIP,
					ContentLength: req.Header.Get(echo.HeaderContentLength),
				}),
			)

			if err := next(c); err != nil {
				c.Error(err)
			}

			res := c.Response()
			fields := []zap.Field{
				RequestID(requestID),
				Request(RequestInfo{
					Method: req.Method,
					Path:   req.URL.Path,
					IP:     sourceIP,
				}),
				Response(ResponseInfo{
					StatusCode:    res.Status,
					ContentLength: res.Size,
					Duration:      time.Since(start),
				}),
			}

			if errors.Is(req.Context().Err(), context.Canceled) {
				logger.Warn("Request aborted", fields...)
				return nil
			}

			logger.Info("Request completed", fields...)
			return nil
		}
	}
}
