package bootstrap

import (
	"context"
	"os"

	"github.com/mj1618/macos-computer/internal/config"
	"github.com/mj1618/macos-computer/internal/version"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const serviceName = "macos-computer"

// ShutdownFunc flushes and stops a tracer provider.
type ShutdownFunc func(context.Context) error

// NewTracerProvider installs a stdout exporter writing to stderr when tracing
// is enabled. Otherwise the global no-op provider is returned untouched.
func NewTracerProvider(config *config.Config, logger *zap.Logger) (trace.TracerProvider, ShutdownFunc, error) {
	if !config.AppConfig.TraceEnabled {
		return otel.GetTracerProvider(), func(context.Context) error { return nil }, nil
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(os.Stderr),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, nil, err
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version.Version),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	logger.Debug("Tracing enabled", zap.String("exporter", "stdout"))

	return tp, tp.Shutdown, nil
}

func newTracer(lc fx.Lifecycle, config *config.Config, logger *zap.Logger) (trace.Tracer, error) {
	tp, shutdown, err := NewTracerProvider(config, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})

	return tp.Tracer(serviceName), nil
}
