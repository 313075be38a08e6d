package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/campreserv/keepr/internal/config"
)

// SetupTracing installs an OTLP gRPC trace exporter when enabled.
// When disabled the global no-op provider stays in place and request
// spans cost nothing.
func SetupTracing(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) {
	if !cfg.Observability.OTELEnabled || cfg.Observability.OTELEndpoint == "" {
		return
	}

	var provider *sdktrace.TracerProvider

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			exporter, err := otlptracegrpc.New(ctx,
				otlptracegrpc.WithEndpoint(cfg.Observability.OTELEndpoint),
				otlptracegrpc.WithInsecure(),
			)
			if err != nil {
				return err
			}

			res, err := resource.New(ctx,
				resource.WithAttributes(semconv.ServiceName(cfg.Observability.ServiceName)),
			)
			if err != nil {
				return err
			}

			provider = sdktrace.NewTracerProvider(
				sdktrace.WithBatcher(exporter),
				sdktrace.WithResource(res),
			)
			otel.SetTracerProvider(provider)
			otel.SetTextMapPropagator(propagation.TraceContext{})

			log.Info("otel tracing enabled",
				zap.String("endpoint", cfg.Observability.OTELEndpoint),
				zap.String("service", cfg.Observability.ServiceName),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if provider == nil {
				return nil
			}
			return provider.Shutdown(ctx)
		},
	})
}
