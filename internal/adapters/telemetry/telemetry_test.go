package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/tldr/internal/adapters/telemetry"
	"go.trai.ch/tldr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// argsToMap turns alternating key-value args into a map.
func argsToMap(t *testing.T, args []any) map[string]any {
	t.Helper()
	require.Zero(t, len(args)%2, "args must come in pairs")

	m := make(map[string]any, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		require.True(t, ok, "key %v is not a string", args[i])
		m[key] = args[i+1]
	}
	return m
}

func TestBridge_LogsFinishedSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged map[string]any
	mockLogger.EXPECT().Debug("fetch.page", gomock.Any()).
		Do(func(_ string, args ...any) {
			logged = argsToMap(t, args)
		})

	tp := telemetry.NewProvider(telemetry.NewBridge(mockLogger))
	tracer := telemetry.NewOTelTracer(tp, "test")

	_, span := tracer.Start(context.Background(), "fetch.page")
	span.SetAttribute("tldr.page", "bar")
	span.SetAttribute("tldr.platform", "linux")
	span.SetAttribute("http.status_code", 404)
	span.RecordError(errors.New("could not fetch description for command `bar`: 404 Not Found"))
	span.End()

	require.NotNil(t, logged)
	assert.Equal(t, "bar", logged["tldr.page"])
	assert.Equal(t, "linux", logged["tldr.platform"])
	assert.Equal(t, "404", logged["http.status_code"])
	assert.Equal(t, "could not fetch description for command `bar`: 404 Not Found", logged["error"])
	assert.Contains(t, logged, "duration")
}

func TestBridge_SuccessfulSpanHasNoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged map[string]any
	mockLogger.EXPECT().Debug("fetch.page", gomock.Any()).
		Do(func(_ string, args ...any) {
			logged = argsToMap(t, args)
		})

	tp := telemetry.NewProvider(telemetry.NewBridge(mockLogger))
	_, span := telemetry.NewOTelTracer(tp, "test").Start(context.Background(), "fetch.page")
	span.SetAttribute("tldr.page", "foo")
	span.End()

	require.NotNil(t, logged)
	assert.Equal(t, "foo", logged["tldr.page"])
	assert.NotContains(t, logged, "error")
}

func TestBridge_StatusWithoutDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged map[string]any
	mockLogger.EXPECT().Debug("test-span", gomock.Any()).
		Do(func(_ string, args ...any) {
			logged = argsToMap(t, args)
		})

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(mockLogger)))
	_, span := tp.Tracer("test").Start(context.Background(), "test-span")
	span.SetStatus(codes.Error, "")
	span.End()

	assert.Equal(t, "span failed", logged["error"])
}

func TestBridge_NilLogger(t *testing.T) {
	tp := telemetry.NewProvider(telemetry.NewBridge(nil))

	require.NotPanics(t, func() {
		_, span := tp.Tracer("test").Start(context.Background(), "test-span")
		span.End()
	})
}

func TestBridge_FlushAndShutdown(t *testing.T) {
	bridge := telemetry.NewBridge(nil)
	assert.NoError(t, bridge.ForceFlush(context.Background()))
	assert.NoError(t, bridge.Shutdown(context.Background()))
}

func TestTracer_SetAttribute(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	tracer := telemetry.NewOTelTracer(tp, "test")

	_, span := tracer.Start(context.Background(), "attrs")
	span.SetAttribute("string", "value")
	span.SetAttribute("int", 42)
	span.SetAttribute("int64", int64(7))
	span.SetAttribute("float", 1.5)
	span.SetAttribute("bool", true)
	span.SetAttribute("stringer", 1500*time.Millisecond)
	span.SetAttribute("other", struct{ A int }{A: 1})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)

	got := make(map[attribute.Key]attribute.Value)
	for _, kv := range ended[0].Attributes() {
		got[kv.Key] = kv.Value
	}

	assert.Equal(t, attribute.StringValue("value"), got["string"])
	assert.Equal(t, attribute.IntValue(42), got["int"])
	assert.Equal(t, attribute.Int64Value(7), got["int64"])
	assert.Equal(t, attribute.Float64Value(1.5), got["float"])
	assert.Equal(t, attribute.BoolValue(true), got["bool"])
	assert.Equal(t, attribute.StringValue("1.5s"), got["stringer"])
	assert.Equal(t, attribute.StringValue("{1}"), got["other"])
}

func TestTracer_RecordError(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))

	_, span := telemetry.NewOTelTracer(tp, "test").Start(context.Background(), "failing")
	span.RecordError(errors.New("boom"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "kept")

	newCtx, span := telemetry.NewNoOpTracer().Start(ctx, "test-span")
	assert.Equal(t, "kept", newCtx.Value(ctxKey{}))
	require.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
