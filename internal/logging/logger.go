package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	ErrorLogFile    = "error.log"
	CombinedLogFile = "combined.log"
)

// Options is resolved once at startup. Production selects JSON encoding and
// adds the error and combined file sinks; anything else is console only.
type Options struct {
	Level       string
	Production  bool
	Environment string
	ServiceName string
	Version     string

	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int

	// Console defaults to stdout.
	Console zapcore.WriteSyncer
	// Sinks receive the JSON encoding of every record at or above Level.
	Sinks []zapcore.WriteSyncer
}

type Logger struct {
	zap     *zap.Logger
	closers []io.Closer
}

func New(z *zap.Logger) *Logger {
	return &Logger{
		zap: z,
	}
}

func NewLogger(opts Options) (*Logger, error) {
	level, err := parseLogLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	console := opts.Console
	if console == nil {
		console = zapcore.Lock(os.Stdout)
	}

	jsonEncoder := zapcore.NewJSONEncoder(jsonEncoderConfig())

	var cores []zapcore.Core
	var closers []io.Closer

	if opts.Production {
		cores = append(cores, zapcore.NewCore(jsonEncoder, console, level))

		errorFile := opts.rollingFile(ErrorLogFile)
		combinedFile := opts.rollingFile(CombinedLogFile)
		cores = append(cores,
			zapcore.NewCore(jsonEncoder, zapcore.AddSync(errorFile), zapcore.ErrorLevel),
			zapcore.NewCore(jsonEncoder, zapcore.AddSync(combinedFile), level),
		)
		closers = append(closers, errorFile, combinedFile)
	} else {
		cores = append(cores, zapcore.NewCore(newPrettyConsoleEncoder(), console, level))
	}

	for _, sink := range opts.Sinks {
		cores = append(cores, zapcore.NewCore(jsonEncoder, sink, level))
		if c, ok := sink.(io.Closer); ok {
			closers = append(closers, c)
		}
	}

	zapLogger := zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.ErrorOutput(zapcore.Lock(os.Stderr)),
		zap.Fields(
			zap.String(KeyEnvironment, opts.Environment),
			zap.String(KeyService, opts.ServiceName),
			zap.String(KeyVersion, opts.Version),
		),
	)

	logger := New(zapLogger)
	logger.closers = closers
	return logger, nil
}

func (o Options) rollingFile(name string) *lumberjack.Logger {
	dir := o.LogDir
	if dir == "" {
		dir = "logs"
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, name),
		MaxSize:    o.MaxSizeMB,
		MaxBackups: o.MaxBackups,
		MaxAge:     o.MaxAgeDays,
	}
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.TimeKey = "timestamp"
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.MessageKey = "message"
	config.LevelKey = "level"
	config.EncodeLevel = zapcore.LowercaseLevelEncoder
	config.CallerKey = "caller"
	config.StacktraceKey = "stack"
	return config
}

func parseLogLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level: %s", level)
	}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		zap: l.zap.With(fields...),
	}
}

// Sync flushes buffered records. Logging is best-effort, so sync failures
// (EINVAL on a terminal stdout, a full disk) are not reported.
func (l *Logger) Sync() error {
	_ = l.zap.Sync()
	return nil
}

func (l *Logger) Close() error {
	err := l.Sync()
	for _, c := range l.closers {
		err = multierr.Append(err, c.Close())
	}
	l.closers = nil
	return err
}

func (l *Logger) GetZap() *zap.Logger {
	return l.zap
}
