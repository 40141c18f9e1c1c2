// Package observability wires the OpenTelemetry meter provider to the
// prometheus exporter so otel-instrumented counters land on /metrics.
package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider *metric.MeterProvider
	meter         otelmetric.Meter
	parseCounter  otelmetric.Int64Counter
	parseDuration otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	parseCounter, _ := meter.Int64Counter(
		"intents.parsed",
		otelmetric.WithDescription("Number of intents parsed"),
	)

	parseDuration, _ := meter.Float64Histogram(
		"intents.parse_duration",
		otelmetric.WithDescription("Intent parse duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider: provider,
		meter:         meter,
		parseCounter:  parseCounter,
		parseDuration: parseDuration,
	}
}

func (o *Observability) RecordParse(ctx context.Context, intentType string) {
	if o.parseCounter != nil {
		o.parseCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("intent_type", intentType),
		))
	}
}

func (o *Observability) RecordParseDuration(ctx context.Context, duration time.Duration, intentType string) {
	if o.parseDuration != nil {
		o.parseDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("intent_type", intentType),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = o.meterProvider.Shutdown(ctx)
	}
}
