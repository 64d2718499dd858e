package logging

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const consoleTimeLayout = "15:04:05"

var (
	consolePool = buffer.NewPool()

	levelColors = map[zapcore.Level]string{
		zapcore.DebugLevel: "\x1b[34m",
		zapcore.InfoLevel:  "\x1b[32m",
		zapcore.WarnLevel:  "\x1b[33m",
		zapcore.ErrorLevel: "\x1b[31m",
	}
)

const colorReset = "\x1b[0m"

// prettyConsoleEncoder renders "15:04:05 [level]: message {...}" with the
// structured fields as indented JSON.
type prettyConsoleEncoder struct {
	*zapcore.MapObjectEncoder
}

func newPrettyConsoleEncoder() zapcore.Encoder {
	return &prettyConsoleEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

func (e *prettyConsoleEncoder) Clone() zapcore.Encoder {
	clone := zapcore.NewMapObjectEncoder()
	for k, v := range e.Fields {
		clone.Fields[k] = v
	}
	return &prettyConsoleEncoder{MapObjectEncoder: clone}
}

func (e *prettyConsoleEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	meta := e.Clone().(*prettyConsoleEncoder)
	for _, f := range fields {
		f.AddTo(meta.MapObjectEncoder)
	}

	line := consolePool.Get()
	line.AppendString(ent.Time.Format(consoleTimeLayout))
	line.AppendString(" [")
	line.AppendString(colorizeLevel(ent.Level))
	line.AppendString("]: ")
	line.AppendString(ent.Message)

	if len(meta.Fields) > 0 {
		line.AppendByte(' ')
		pretty, err := json.MarshalIndent(meta.Fields, "", "  ")
		if err != nil {
			line.AppendString(fmt.Sprintf("%v", meta.Fields))
		} else {
			_, _ = line.Write(pretty)
		}
	}

	if ent.Stack != "" {
		line.AppendByte('\n')
		line.AppendString(ent.Stack)
	}

	line.AppendString(zapcore.DefaultLineEnding)
	return line, nil
}

func colorizeLevel(level zapcore.Level) string {
	color, ok := levelColors[level]
	if !ok {
		return level.String()
	}
	return color + level.String() + colorReset
}
