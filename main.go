package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gravity-ai/gravity-api/config"
	"github.com/gravity-ai/gravity-api/internal/ai"
	"github.com/gravity-ai/gravity-api/internal/apierror"
	"github.com/gravity-ai/gravity-api/internal/health"
	"github.com/gravity-ai/gravity-api/internal/logging"
	"github.com/gravity-ai/gravity-api/internal/metrics"
	"github.com/gravity-ai/gravity-api/internal/validation"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		config.Module,
		logging.Module,
		apierror.Module,
		health.Module,
		ai.Module,
		fx.WithLogger(func(logger *logging.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.GetZap()}
		}),
		fx.Provide(NewEcho),
		fx.Invoke(RegisterRoutes),
		fx.Invoke(StartServer),
	).Run()
}

// NewEcho installs the middleware chain. Metrics sits outside the request
// logger so it sees the status written by the error handler; Recover sits
// inside so panics reach the error handler through the logger.
func NewEcho(cfg *config.Config, logger *logging.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()

	if cfg.MetricsEnabled {
		e.Use(metrics.Middleware())
	}
	e.Use(logging.RequestLoggingMiddleware(logger))
	e.Use(echomiddleware.RecoverWithConfig(apierror.RecoverConfig()))

	if len(cfg.AllowedOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost},
			AllowCredentials: false,
		}))
	}
	return e
}

func RegisterRoutes(
	e *echo.Echo,
	cfg *config.Config,
	healthHandler *health.Handler,
	aiHandler *ai.Handler,
) {
	e.GET("/healthz", healthHandler.Health)

	e.POST("/wa/webhook", aiHandler.Webhook)
	e.POST("/rag/embed", aiHandler.Embed)
	e.POST("/rag/ask", aiHandler.Ask)
	e.POST("/insights/run", aiHandler.RunInsights)

	if cfg.MetricsEnabled {
		e.GET("/metrics", metrics.Handler())
	}
}

func StartServer(lc fx.Lifecycle, sd fx.Shutdowner, e *echo.Echo, cfg *config.Config, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Server starting",
				zap.String("port", cfg.Port),
				zap.Bool("production", cfg.IsProduction()))

			go func() {
				if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("Server failed to start", zap.Error(err))
					_ = sd.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
