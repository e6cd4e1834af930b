package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type HTTPClientCollector struct {
	requestCount        metric.Int64Counter
	requestDuration     metric.Float64Histogram
	errorCount          metric.Int64Counter
	circuitBreakerState metric.Int64Gauge
}

func NewHTTPClientCollector(meter metric.Meter) (*HTTPClientCollector, error) {
	// A nil meter falls back to the otel noop meter, which never errors.
	// Lets tests build a collector without an SDK pipeline.
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("noop")
	}

	requestCount, err := meter.Int64Counter(
		"http.client.requests",
		metric.WithDescription("Total outbound provider requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.client.duration",
		metric.WithDescription("Outbound provider request duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"http.client.errors",
		metric.WithDescription("Total outbound provider errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	circuitBreakerState, err := meter.Int64Gauge(
		"http.client.circuit_breaker.state",
		metric.WithDescription("Circuit breaker state (0=Closed, 1=Open, 2=HalfOpen)"),
		metric.WithUnit("{state}"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPClientCollector{
		requestCount:        requestCount,
		requestDuration:     requestDuration,
		errorCount:          errorCount,
		circuitBreakerState: circuitBreakerState,
	}, nil
}

func (c *HTTPClientCollector) RecordRequest(
	ctx context.Context,
	method string,
	host string,
	statusCode int,
	duration time.Duration,
	err error,
) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.host", host),
		attribute.Int("http.status_code", statusCode),
	}

	c.requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	c.requestDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))

	if err != nil {
		errorAttrs := []attribute.KeyValue{
			attribute.String("http.host", host),
			attribute.String("error.type", classifyError(statusCode, err)),
		}
		c.errorCount.Add(ctx, 1, metric.WithAttributes(errorAttrs...))
	}
}

func (c *HTTPClientCollector) RecordCircuitBreakerState(
	ctx context.Context,
	host string,
	state string,
) {
	attrs := []attribute.KeyValue{
		attribute.String("http.host", host),
		attribute.String("circuit_breaker.state", state),
	}

	c.circuitBreakerState.Record(ctx, circuitBreakerStateToInt(state), metric.WithAttributes(attrs...))
}

func circuitBreakerStateToInt(state string) int64 {
	switch state {
	case "closed":
		return 0
	case "open":
		return 1
	case "half-open":
		return 2
	default:
		return -1
	}
}

func classifyError(statusCode int, err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_breaker_open"
	case statusCode >= 500:
		return "provider_error"
	case statusCode >= 400:
		return "provider_rejected"
	default:
		return "transport"
	}
}
