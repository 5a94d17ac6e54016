// Package telemetry implements the Tracer port on top of OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/tldr/internal/core/ports"
)

// InstrumentationName names the tracer used for page fetches.
const InstrumentationName = "go.trai.ch/tldr"

// NewProvider returns an SDK provider whose only processor is bridge.
// Spans are handed to the bridge as they end, without batching.
func NewProvider(bridge *Bridge) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
}

// Tracer adapts an OpenTelemetry tracer to ports.Tracer.
type Tracer struct {
	tracer trace.Tracer
}

// NewOTelTracer returns a Tracer backed by tp.
func NewOTelTracer(tp trace.TracerProvider, name string) *Tracer {
	return &Tracer{tracer: tp.Tracer(name)}
}

// Start opens a span and returns the context carrying it.
func (t *Tracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	ctx, s := t.tracer.Start(ctx, name)
	return ctx, span{s}
}

type span struct {
	otel trace.Span
}

func (s span) End() {
	s.otel.End()
}

// RecordError also sets the span status, so the bridge reports it as failed.
func (s span) RecordError(err error) {
	s.otel.RecordError(err)
	s.otel.SetStatus(codes.Error, err.Error())
}

func (s span) SetAttribute(key string, value any) {
	s.otel.SetAttributes(keyValue(key, value))
}

func keyValue(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case fmt.Stringer:
		return attribute.Stringer(key, v)
	default:
		return attribute.String(key, fmt.Sprint(v))
	}
}
