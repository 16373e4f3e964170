package session

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments, initialized once via InitMetrics().
var (
	keysCounter        metric.Int64Counter
	evaluationsCounter metric.Int64Counter
	errorCounter       metric.Int64Counter
	requestHistogram   metric.Float64Histogram
	resultGauge        metric.Float64Gauge
)

// activeSessions is scraped from /metrics. Stores update it even before
// InitMetrics registers it.
var activeSessions = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: "deskcalc",
	Name:      "sessions_active",
	Help:      "Number of live calculator sessions.",
})

// InitMetrics registers the session metric instruments. Call it once at
// startup, after observability.InitMetrics.
func InitMetrics() error {
	meter := otel.Meter("deskcalc/session")

	var err error

	keysCounter, err = meter.Int64Counter("deskcalc.keys.total",
		metric.WithDescription("Total number of key presses received"),
		metric.WithUnit("{key}"),
	)
	if err != nil {
		return fmt.Errorf("creating keys counter: %w", err)
	}

	evaluationsCounter, err = meter.Int64Counter("deskcalc.evaluations.total",
		metric.WithDescription("Total number of expressions evaluated"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return fmt.Errorf("creating evaluations counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("deskcalc.errors.total",
		metric.WithDescription("Total number of failed requests and evaluations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	requestHistogram, err = meter.Float64Histogram("deskcalc.keys.duration",
		metric.WithDescription("Time spent dispatching the keys of one request in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating request histogram: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("deskcalc.last_result",
		metric.WithDescription("The last successfully computed result"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	if err := prometheus.Register(activeSessions); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return fmt.Errorf("registering sessions gauge: %w", err)
		}
	}

	return nil
}
