package logging

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaSinkCopiesAndTrimsRecords(t *testing.T) {
	w := &fakeWriter{}
	sink := &KafkaSink{writer: w, key: []byte("gravity-ai-api")}

	buf := []byte("{\"message\":\"one\"}\n")
	n, err := sink.Write(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)

	copy(buf, "XXXXXXXXXXXXXXXXX")

	require.Len(t, w.msgs, 1)
	assert.Equal(t, `{"message":"one"}`, string(w.msgs[0].Value))
	assert.Equal(t, "gravity-ai-api", string(w.msgs[0].Key))
}

func TestKafkaSinkSkipsEmptyRecords(t *testing.T) {
	w := &fakeWriter{}
	sink := &KafkaSink{writer: w}

	n, err := sink.Write([]byte("\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, w.msgs)
}

func TestKafkaSinkReportsWriterErrors(t *testing.T) {
	sink := &KafkaSink{writer: &fakeWriter{err: errors.New("broker down")}}

	_, err := sink.Write([]byte("{}\n"))
	require.Error(t, err)
}

func TestLoggerCloseClosesKafkaSink(t *testing.T) {
	w := &fakeWriter{}
	sink := &KafkaSink{writer: w}

	logger, err := NewLogger(Options{
		Level:   "info",
		Console: zapcore.AddSync(io.Discard),
		Sinks:   []zapcore.WriteSyncer{sink},
	})
	require.NoError(t, err)

	logger.Info("shipped")
	require.NoError(t, logger.Close())
	assert.True(t, w.closed)
	require.Len(t, w.msgs, 1)
	assert.Contains(t, string(w.msgs[0].Value), `"message":"shipped"`)
}
