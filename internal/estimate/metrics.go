package estimate

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	bidsCounter    metric.Int64Counter
	bidsHistogram  metric.Float64Histogram
	errorCounter   metric.Int64Counter
	totalCostGauge metric.Float64Gauge
)

// InitMetrics registers custom OTel metric instruments for the estimate domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("estimate")

	var err error

	bidsCounter, err = meter.Int64Counter("estimate.bids.total",
		metric.WithDescription("Total number of bids computed"),
		metric.WithUnit("{bid}"),
	)
	if err != nil {
		return fmt.Errorf("creating bids counter: %w", err)
	}

	bidsHistogram, err = meter.Float64Histogram("estimate.bid.duration",
		metric.WithDescription("Duration of bid computations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating bids histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("estimate.errors.total",
		metric.WithDescription("Total number of rejected or failed bid requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	totalCostGauge, err = meter.Float64Gauge("estimate.last_total_cost",
		metric.WithDescription("Total cost of the most recent bid, in dollars"),
		metric.WithUnit("USD"),
	)
	if err != nil {
		return fmt.Errorf("creating total cost gauge: %w", err)
	}

	return nil
}
