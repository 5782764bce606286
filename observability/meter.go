package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/skillsenselab/bearerkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// AuthMetrics holds the metric instruments recorded by the authentication
// middleware.
type AuthMetrics struct {
	requestTotal   metric.Int64Counter
	selectedTotal  metric.Int64Counter
	rejectedTotal  metric.Int64Counter
	verifyDuration metric.Float64Histogram
}

// NewAuthMetrics creates the authentication instruments on the given meter.
func NewAuthMetrics(meter metric.Meter) (*AuthMetrics, error) {
	requestTotal, err := meter.Int64Counter("authn.requests",
		metric.WithDescription("Total number of requests seen by the authentication middleware"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authn.requests counter: %w", err)
	}

	selectedTotal, err := meter.Int64Counter("authn.selected",
		metric.WithDescription("Requests routed to a scheme, by scheme name"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authn.selected counter: %w", err)
	}

	rejectedTotal, err := meter.Int64Counter("authn.rejected",
		metric.WithDescription("Rejected tokens, by scheme and reason"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authn.rejected counter: %w", err)
	}

	verifyDuration, err := meter.Float64Histogram("authn.verify.duration",
		metric.WithDescription("Duration of token verification in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating authn.verify.duration histogram: %w", err)
	}

	return &AuthMetrics{
		requestTotal:   requestTotal,
		selectedTotal:  selectedTotal,
		rejectedTotal:  rejectedTotal,
		verifyDuration: verifyDuration,
	}, nil
}

// RecordRequest counts a request entering the authentication middleware.
func (m *AuthMetrics) RecordRequest(ctx context.Context) {
	m.requestTotal.Add(ctx, 1)
}

// RecordSelected records a request that matched a scheme and verified
// successfully.
func (m *AuthMetrics) RecordSelected(ctx context.Context, scheme string, duration time.Duration) {
	m.selectedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("scheme", scheme),
	))
	m.verifyDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("scheme", scheme),
		attribute.String("outcome", OutcomeAuthenticated),
	))
}

// RecordRejected records a request that matched a scheme but failed
// verification.
func (m *AuthMetrics) RecordRejected(ctx context.Context, scheme, reason string, duration time.Duration) {
	m.rejectedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("scheme", scheme),
		attribute.String("reason", reason),
	))
	m.verifyDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("scheme", scheme),
		attribute.String("outcome", OutcomeRejected),
	))
}
