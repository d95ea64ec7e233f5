// Package sjstrace records sjs drains as OpenTelemetry spans.
package sjstrace

import (
	"context"

	"github.com/delaneyj/tickparty/sjs"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTracerName = "github.com/delaneyj/tickparty/sjs"
	spanName          = "sjs.drain"
)

// Config configures the tracing hook.
type Config struct {
	// TracerName is the name of the tracer.
	TracerName string

	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider

	// Attributes are added to every span.
	Attributes []attribute.KeyValue

	// SkipEmpty drops spans for drains that took no passes.
	SkipEmpty bool
}

type Option func(*Config)

func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Config) {
		c.TracerProvider = provider
	}
}

func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(c *Config) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

func WithSkipEmpty(skip bool) Option {
	return func(c *Config) {
		c.SkipEmpty = skip
	}
}

// Hook returns a drain hook that records one span per drain, back dated to
// the time the drain started.
//
//	rs := sjs.New(sjs.WithDrainHook(sjstrace.Hook()))
func Hook(opts ...Option) sjs.DrainHook {
	config := Config{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.TracerProvider == nil {
		config.TracerProvider = otel.GetTracerProvider()
	}
	tracer := config.TracerProvider.Tracer(config.TracerName)

	return func(info sjs.DrainInfo) {
		if config.SkipEmpty && info.Passes == 0 {
			return
		}

		_, span := tracer.Start(context.Background(), spanName,
			trace.WithTimestamp(info.Start),
			trace.WithAttributes(config.Attributes...),
		)
		span.SetAttributes(
			attribute.Int("sjs.time", info.Time),
			attribute.Int64("sjs.passes", int64(info.Passes)),
			attribute.Int64("sjs.recomputations", int64(info.Stats.Recomputations)),
			attribute.Bool("sjs.aborted", info.Aborted),
		)
		if info.Aborted {
			span.SetStatus(codes.Error, "drain aborted")
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End(trace.WithTimestamp(info.End))
	}
}
