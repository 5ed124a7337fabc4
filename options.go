package graphscope

import (
	"log/slog"

	"github.com/zero-day-ai/graphscope/config"
	"github.com/zero-day-ai/graphscope/creation"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures the stack attached by NewContext.
type Option = creation.Option

// WithLogger sets a custom logger for the stack.
func WithLogger(logger *slog.Logger) Option {
	return creation.WithLogger(logger)
}

// WithTracer sets an OpenTelemetry tracer. Every scope opened with Use is
// recorded as a span.
func WithTracer(tracer trace.Tracer) Option {
	return creation.WithTracer(tracer)
}

// WithMeter sets an OpenTelemetry meter for scope, node and link counters.
func WithMeter(meter metric.Meter) Option {
	return creation.WithMeter(meter)
}

// WithConfig applies an already loaded configuration.
func WithConfig(cfg *config.Config) Option {
	return creation.WithConfig(cfg)
}
