// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"

	jaegerPropagator "go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/canonical/webhook-service/internal/logging"
)

const serviceName = "webhook-service"

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) init(service string, e sdktrace.SpanExporter, sampler sdktrace.Sampler) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(e),
		sdktrace.WithSampler(sampler),
		sdktrace.WithResource(
			resource.NewWithAttributes(
				semconv.SchemaURL,
				semconv.ServiceNameKey.String(service),
			),
		),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			jaegerPropagator.Jaeger{},
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	t.tracer = otel.Tracer(service)
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

func (t *Tracer) exporter(cfg *Config) (sdktrace.SpanExporter, error) {
	ctx := context.Background()

	if cfg.GRPCEndpoint != "" {
		return otlptrace.New(
			ctx,
			otlptracegrpc.NewClient(
				otlptracegrpc.WithEndpoint(cfg.GRPCEndpoint),
				otlptracegrpc.WithInsecure(),
			),
		)
	}

	if cfg.HTTPEndpoint != "" {
		return otlptrace.New(
			ctx,
			otlptracehttp.NewClient(
				otlptracehttp.WithEndpoint(cfg.HTTPEndpoint),
				otlptracehttp.WithInsecure(),
			),
		)
	}

	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}

// NewTracer builds an exporter from the config, grpc wins over http and stdout is the fallback.
func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)
	t.logger = cfg.Logger

	if !cfg.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer(serviceName)
		return t
	}

	exporter, err := t.exporter(cfg)
	if err != nil {
		if t.logger != nil {
			t.logger.Errorf("unable to initialize tracing exporter due: %v", err)
		}
		t.tracer = noop.NewTracerProvider().Tracer(serviceName)
		return t
	}

	t.init(serviceName, exporter, cfg.sampler())

	return t
}

func NewNoopTracer() *Tracer {
	return NewTracer(NewNoopConfig())
}
