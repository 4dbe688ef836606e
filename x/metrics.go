/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"context"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	// Cumulative metrics.
	NumIntersectQueries = stats.Int64("spatial_intersect_queries_total",
		"Total number of intersection queries", stats.UnitDimensionless)
	NumSweepFallbacks = stats.Int64("spatial_sweep_fallbacks_total",
		"Number of sweep-line queries that fell back to the naive strategy",
		stats.UnitDimensionless)
	NumHullFailures = stats.Int64("spatial_hull_failures_total",
		"Number of convex hull computations that failed", stats.UnitDimensionless)
	LatencyMs = stats.Float64("spatial_latency",
		"Latency of the geometry engines", stats.UnitMilliseconds)

	// Tag keys here
	KeyMethod, _ = tag.NewKey("method")

	defaultLatencyMsDistribution = view.Distribution(
		0, 0.01, 0.05, 0.1, 0.3, 0.6, 0.8, 1, 2, 3, 4, 5, 6, 8, 10, 13, 16,
		20, 25, 30, 40, 50, 65, 80, 100, 130, 160, 200, 250, 300, 400, 500,
		650, 800, 1000, 2000, 5000, 10000)

	allTagKeys = []tag.Key{
		KeyMethod,
	}

	allViews = []*view.View{
		{
			Name:        LatencyMs.Name(),
			Measure:     LatencyMs,
			Description: LatencyMs.Description(),
			Aggregation: defaultLatencyMsDistribution,
			TagKeys:     allTagKeys,
		},
		{
			Name:        NumIntersectQueries.Name(),
			Measure:     NumIntersectQueries,
			Description: NumIntersectQueries.Description(),
			Aggregation: view.Count(),
			TagKeys:     allTagKeys,
		},
		{
			Name:        NumSweepFallbacks.Name(),
			Measure:     NumSweepFallbacks,
			Description: NumSweepFallbacks.Description(),
			Aggregation: view.Count(),
			TagKeys:     allTagKeys,
		},
		{
			Name:        NumHullFailures.Name(),
			Measure:     NumHullFailures,
			Description: NumHullFailures.Description(),
			Aggregation: view.Count(),
			TagKeys:     allTagKeys,
		},
	}
)

// RegisterViews registers the metric views so that recorded measurements are
// aggregated. Until this is called, recording is a no-op.
func RegisterViews() error {
	return view.Register(allViews...)
}

// UnregisterViews removes the views registered by RegisterViews.
func UnregisterViews() {
	view.Unregister(allViews...)
}

// MetricsContext returns the context used for recording metrics.
func MetricsContext() context.Context {
	return context.Background()
}

// WithMethod returns a new updated context with the tag KeyMethod set to the given value.
func WithMethod(parent context.Context, method string) context.Context {
	ctx, err := tag.New(parent, tag.Upsert(KeyMethod, method))
	Check(err)
	return ctx
}

// SinceMs returns the time since startTime in milliseconds (as a float).
func SinceMs(startTime time.Time) float64 {
	return float64(time.Since(startTime)) / 1e6
}

// RecordLatency records the time elapsed since start under the given method.
func RecordLatency(method string, start time.Time) {
	stats.Record(WithMethod(MetricsContext(), method), LatencyMs.M(SinceMs(start)))
}

// Count increments m by one under the given method.
func Count(method string, m *stats.Int64Measure) {
	stats.Record(WithMethod(MetricsContext(), method), m.M(1))
}
