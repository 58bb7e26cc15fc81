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
	meterProvider  *metric.MeterProvider
	meter          otelmetric.Meter
	lookupCounter  otelmetric.Int64Counter
	lookupDuration otelmetric.Float64Histogram
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

	lookupCounter, _ := meter.Int64Counter(
		"weather.lookups",
		otelmetric.WithDescription("Number of weather lookups processed"),
	)

	lookupDuration, _ := meter.Float64Histogram(
		"weather.lookup.duration",
		otelmetric.WithDescription("Weather lookup duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:  provider,
		meter:          meter,
		lookupCounter:  lookupCounter,
		lookupDuration: lookupDuration,
	}
}

// RecordLookup counts one completed lookup by outcome ("success" or the
// relay error code).
func (o *Observability) RecordLookup(ctx context.Context, outcome string) {
	if o != nil && o.lookupCounter != nil {
		o.lookupCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}
}

// RecordLookupDuration records how long one lookup took end to end.
func (o *Observability) RecordLookupDuration(ctx context.Context, d time.Duration, outcome string) {
	if o != nil && o.lookupDuration != nil {
		o.lookupDuration.Record(ctx, float64(d.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}
}

func (o *Observability) Shutdown() {
	if o != nil && o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := o.meterProvider.Shutdown(ctx); err != nil {
			log.Printf("meter provider shutdown: %v", err)
		}
	}
}
