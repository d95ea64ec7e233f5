package sjstrace_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/delaneyj/tickparty/pkg/sjstrace"
	"github.com/delaneyj/tickparty/sjs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTraced(t *testing.T, opts ...sjstrace.Option) (*sjs.Runtime, *tracetest.SpanRecorder) {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	opts = append([]sjstrace.Option{sjstrace.WithTracerProvider(tp)}, opts...)

	rs := sjs.New(
		sjs.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		sjs.WithDrainHook(sjstrace.Hook(opts...)),
	)
	return rs, sr
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestHook(t *testing.T) {
	rs, sr := newTraced(t, sjstrace.WithAttributes(attribute.String("app", "test")))

	a := sjs.Data(rs, 1)
	sjs.Root(rs, func(dispose func()) struct{} {
		sjs.Effect(rs, func(struct{}) struct{} {
			a.Get()
			return struct{}{}
		})
		return struct{}{}
	})
	a.Set(2)

	spans := sr.Ended()
	require.Len(t, spans, 2)

	span := spans[1]
	assert.Equal(t, "sjs.drain", span.Name())
	assert.Equal(t, codes.Ok, span.Status().Code)
	assert.False(t, span.EndTime().Before(span.StartTime()))

	m := attrs(span)
	assert.Equal(t, "test", m["app"].AsString())
	assert.EqualValues(t, 1, m["sjs.time"].AsInt64())
	assert.EqualValues(t, 1, m["sjs.passes"].AsInt64())
	assert.EqualValues(t, 1, m["sjs.recomputations"].AsInt64())
	assert.False(t, m["sjs.aborted"].AsBool())
}

func TestHookAborted(t *testing.T) {
	rs, sr := newTraced(t)

	a := sjs.Data(rs, 0)
	err := sjs.Catch(func() {
		sjs.Freeze(rs, func() struct{} {
			a.Set(1)
			a.Set(2)
			return struct{}{}
		})
	})
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.True(t, attrs(spans[0])["sjs.aborted"].AsBool())
}

func TestHookSkipEmpty(t *testing.T) {
	rs, sr := newTraced(t, sjstrace.WithSkipEmpty(true))

	a := sjs.Data(rs, 0)
	sjs.Root(rs, func(dispose func()) struct{} {
		sjs.Effect(rs, func(struct{}) struct{} {
			a.Get()
			return struct{}{}
		})
		return struct{}{}
	})
	assert.Empty(t, sr.Ended())

	a.Set(1)
	assert.Len(t, sr.Ended(), 1)
}
