package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

var (
	globalConfig *Config
	configOnce   sync.Once
)

// ShutdownFunc flushes and tears down the TracerProvider set up by Init.
type ShutdownFunc func(ctx context.Context) error

func noopShutdown(context.Context) error { return nil }

// Init sets up the global TracerProvider from environment configuration.
// If OTEL_ENABLED is not "true" it returns a no-op shutdown and leaves
// the default no-op provider in place. The environment is read only on
// the first call; each later enabled call builds and installs a new
// provider.
func Init(ctx context.Context) (ShutdownFunc, error) {
	cfg := loadConfig()
	if !cfg.Enabled {
		return noopShutdown, nil
	}

	res, err := buildResource(ctx, cfg)
	if err != nil {
		return noopShutdown, err
	}
	exporter, err := createExporter(ctx, cfg)
	if err != nil {
		return noopShutdown, err
	}
	sampler := createSampler(cfg)

	tp := trace.NewTracerProvider(
		trace.WithResource(res),
		trace.WithBatcher(exporter),
		trace.WithSampler(sampler),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

// Enabled reports whether tracing is enabled per the environment.
func Enabled() bool { return loadConfig().Enabled }

func loadConfig() *Config {
	configOnce.Do(func() { globalConfig = LoadFromEnv() })
	return globalConfig
}

// tracerName is the instrumentation scope every round span is recorded
// under.
const tracerName = "github.com/katalvlaran/amrmerge/coordinator"

// StartRound opens a span covering one bulk-synchronous round, tagged
// with the round number — the unit coordinator reports progress at.
func StartRound(ctx context.Context, round int) (context.Context, oteltrace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "round",
		oteltrace.WithAttributes(attribute.Int("round", round)))
}
