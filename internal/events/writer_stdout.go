package events

import (
	"context"
	"fmt"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"go.uber.org/zap"
)

// event writer used in dev
type StdoutWriter struct{}

func (s *StdoutWriter) Write(ctx context.Context, topic string, e cloudevents.Event) error {
	zap.S().Named("stdout_writer").Infow("event wrote", "topic", topic, "type", e.Type(), "id", e.ID(), "data", string(e.Data()))
	return nil
}

func (s *StdoutWriter) Close(_ context.Context) error {
	return nil
}

// NewWriter returns the writer registered under name.
func NewWriter(name string) (Writer, error) {
	switch name {
	case "", "stdout":
		return &StdoutWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown events writer %q", name)
	}
}
