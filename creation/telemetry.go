package creation

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/zero-day-ai/graphscope/creation"

// instruments holds the metric instruments of a stack. They are created
// once in NewStack.
type instruments struct {
	// scopes counts opened scopes
	scopes metric.Int64Counter

	// depth tracks the number of open scopes
	depth metric.Int64UpDownCounter

	// nodes counts node resolutions, split by kind and cache hit
	nodes metric.Int64Counter

	// links counts created links
	links metric.Int64Counter
}

func newInstruments(meter metric.Meter) (*instruments, error) {
	in := &instruments{}
	var err error

	in.scopes, err = meter.Int64Counter(
		"graphscope.scopes",
		metric.WithDescription("Number of creation scopes opened"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create scopes counter: %w", err)
	}

	in.depth, err = meter.Int64UpDownCounter(
		"graphscope.scope.depth",
		metric.WithDescription("Number of creation scopes currently open"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create depth counter: %w", err)
	}

	in.nodes, err = meter.Int64Counter(
		"graphscope.nodes.resolved",
		metric.WithDescription("Number of node resolutions"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create nodes counter: %w", err)
	}

	in.links, err = meter.Int64Counter(
		"graphscope.links.created",
		metric.WithDescription("Number of links created"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create links counter: %w", err)
	}

	return in, nil
}

func noopInstruments() *instruments {
	in, _ := newInstruments(metricnoop.NewMeterProvider().Meter(instrumentationName))
	return in
}

// selectTracer picks the explicit tracer, then the global one when tracing
// is switched on, and a noop tracer otherwise.
func selectTracer(c *stackConfig) trace.Tracer {
	switch {
	case c.tracer != nil:
		return c.tracer
	case c.cfg.TracingEnabled():
		return otel.Tracer(instrumentationName)
	default:
		return tracenoop.NewTracerProvider().Tracer(instrumentationName)
	}
}

func selectMeter(c *stackConfig) metric.Meter {
	switch {
	case c.meter != nil:
		return c.meter
	case c.cfg.MetricsEnabled():
		return otel.Meter(instrumentationName)
	default:
		return metricnoop.NewMeterProvider().Meter(instrumentationName)
	}
}

func (in *instruments) scopeOpened(ctx context.Context) {
	if in == nil {
		return
	}
	in.scopes.Add(ctx, 1)
	in.depth.Add(ctx, 1)
}

func (in *instruments) scopeClosed(ctx context.Context) {
	if in == nil {
		return
	}
	in.depth.Add(ctx, -1)
}

func (in *instruments) nodeResolved(ctx context.Context, kind string, cacheHit bool) {
	if in == nil {
		return
	}
	in.nodes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.Bool("cache_hit", cacheHit),
	))
}

func (in *instruments) linkCreated(ctx context.Context, scoped bool) {
	if in == nil {
		return
	}
	in.links.Add(ctx, 1, metric.WithAttributes(attribute.Bool("scoped", scoped)))
}
