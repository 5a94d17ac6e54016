package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/tldr/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor to report finished spans as debug log records.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing; attributes are only complete once the span ends.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its attributes, its duration and, for failed spans, the error.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	attrs := s.Attributes()
	args := make([]any, 0, 2*len(attrs)+4)
	for _, kv := range attrs {
		args = append(args, string(kv.Key), kv.Value.Emit())
	}
	args = append(args, "duration", s.EndTime().Sub(s.StartTime()).Round(time.Millisecond).String())

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		args = append(args, "error", desc)
	}

	b.logger.Debug(s.Name(), args...)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
