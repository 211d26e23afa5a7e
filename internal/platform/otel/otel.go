// Package otel installs the process tracer provider
package otel

import (
	"context"

	"snapbridge/internal/core/version"
	"snapbridge/internal/platform/config"
	perr "snapbridge/internal/platform/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Options for Setup
type Options struct {
	Enabled  bool
	Endpoint string
	// SampleRatio is the parent based trace id ratio, 1 samples everything
	SampleRatio float64
}

// FromConfig reads OTEL_ENABLED, OTEL_ENDPOINT and OTEL_SAMPLE_PERCENT under c
func FromConfig(c config.Conf) Options {
	o := c.Prefix("OTEL_")
	return Options{
		Enabled:     o.MayBool("ENABLED", true),
		Endpoint:    o.MayString("ENDPOINT", ""),
		SampleRatio: float64(o.MayInt("SAMPLE_PERCENT", 100)) / 100,
	}
}

// Setup registers a global tracer provider exporting over OTLP/HTTP
// Tracing is opt-in: without an endpoint, or when disabled, the returned shutdown is a noop
// and the global provider stays the otel default
func Setup(ctx context.Context, serviceName string, opt Options) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if !opt.Enabled || opt.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(opt.Endpoint))
	if err != nil {
		return noop, perr.Wrap(err, perr.ErrorCodeUnavailable, "create otlp exporter")
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(version.Info().Version),
	))
	if err != nil {
		return noop, perr.Wrap(err, perr.ErrorCodeUnknown, "build otel resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(opt.SampleRatio)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func sampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.AlwaysSample()
	case ratio <= 0:
		return sdktrace.NeverSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}
