package logging

import (
	"context"

	"github.com/gravity-ai/gravity-api/config"
	"go.uber.org/fx"
	"go.uber.org/zap/zapcore"
)

var Module = fx.Options(
	fx.Provide(NewLoggerFromConfig),
	fx.Invoke(RegisterLoggerShutdown),
)

func NewLoggerFromConfig(cfg *config.Config) (*Logger, error) {
	var sinks []zapcore.WriteSyncer
	if len(cfg.KafkaBrokers) > 0 {
		sinks = append(sinks, NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.ServiceName))
	}

	return NewLogger(Options{
		Level:       cfg.LogLevel,
		Production:  cfg.IsProduction(),
		Environment: cfg.Environment,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		LogDir:      cfg.LogDir,
		MaxSizeMB:   cfg.LogMaxSizeMB,
		MaxBackups:  cfg.LogMaxBackups,
		MaxAgeDays:  cfg.LogMaxAgeDays,
		Sinks:       sinks,
	})
}

func RegisterLoggerShutdown(lc fx.Lifecycle, logger *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return logger.Close()
		},
	})
}
