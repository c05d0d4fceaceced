// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"os"

	"go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/tenantflow/tenantflow/internal/logging"
)

const serviceName = "tenantflow"

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) init(service string, e sdktrace.SpanExporter) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(e),
		sdktrace.WithResource(
			resource.NewSchemaless(
				attribute.String("service.name", service),
			),
		),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			jaeger.Jaeger{},
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

func (t *Tracer) exporter(cfg *Config) (sdktrace.SpanExporter, error) {
	if cfg.OtelGRPCEndpoint != "" {
		return otlptrace.New(
			context.TODO(),
			otlptracegrpc.NewClient(
				otlptracegrpc.WithEndpoint(cfg.OtelGRPCEndpoint),
				otlptracegrpc.WithInsecure(),
			),
		)
	}

	if cfg.OtelHTTPEndpoint != "" {
		return otlptrace.New(
			context.TODO(),
			otlptracehttp.NewClient(
				otlptracehttp.WithEndpoint(cfg.OtelHTTPEndpoint),
				otlptracehttp.WithInsecure(),
			),
		)
	}

	return stdouttrace.New(stdouttrace.WithWriter(os.Stderr), stdouttrace.WithPrettyPrint())
}

// NewTracer returns a tracer backed by the global provider, the provider is
// only configured when tracing is enabled
func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)
	t.logger = cfg.Logger

	if cfg.Enabled {
		e, err := t.exporter(cfg)
		if err != nil {
			t.logger.Errorf("unable to initialize tracing exporter due to %s", err)
		} else {
			t.init(serviceName, e)
		}
	}

	t.tracer = otel.Tracer(serviceName)

	return t
}

func NewNoopTracer() *Tracer {
	t := new(Tracer)
	t.logger = logging.NewNoopLogger()
	t.tracer = noop.NewTracerProvider().Tracer(serviceName)

	return t
}
