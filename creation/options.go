package creation

import (
	"log/slog"

	"github.com/zero-day-ai/graphscope/config"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Stack.
type Option func(*stackConfig)

type stackConfig struct {
	cfg    *config.Config
	logger *slog.Logger
	tracer trace.Tracer
	meter  metric.Meter
}

// WithConfig applies a loaded configuration: depth limit, log level for the
// default logger, telemetry switches and per-scope attribute defaults.
func WithConfig(cfg *config.Config) Option {
	return func(c *stackConfig) {
		c.cfg = cfg
	}
}

// WithLogger sets a custom logger.
// If not provided, a text logger on stderr is created at the configured level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *stackConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. Spans are recorded for scopes
// opened through UseContext. It overrides the telemetry.tracing switch.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *stackConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter for scope and resolution counters.
// It overrides the telemetry.metrics switch.
func WithMeter(meter metric.Meter) Option {
	return func(c *stackConfig) {
		c.meter = meter
	}
}
