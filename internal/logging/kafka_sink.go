package logging

import (
	"bytes"
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink ships encoded records to a topic. The writer runs in async mode,
// so Write never waits on the brokers and delivery is best-effort.
type KafkaSink struct {
	writer messageWriter
	key    []byte
}

func NewKafkaSink(brokers []string, topic, key string) *KafkaSink {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
	}

	return &KafkaSink{writer: w, key: []byte(key)}
}

func (s *KafkaSink) Write(p []byte) (int, error) {
	// zap reuses p once Write returns; the async writer keeps the message.
	value := bytes.Clone(bytes.TrimRight(p, "\n"))
	if len(value) == 0 {
		return len(p), nil
	}

	err := s.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   s.key,
		Value: value,
		Time:  time.Now(),
	})
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *KafkaSink) Sync() error {
	return nil
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}
