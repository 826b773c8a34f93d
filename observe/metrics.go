package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	MetricFilterTotal    = "datefilter.filter.total"
	MetricFilterErrors   = "datefilter.filter.errors"
	MetricFilterDuration = "datefilter.filter.duration_ms"
	MetricCacheHits      = "datefilter.cache.hits"
	MetricCacheMisses    = "datefilter.cache.misses"
)

// Metrics records filter metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordFilter records one filter invocation.
	RecordFilter(ctx context.Context, meta FilterMeta, duration time.Duration, err error)

	// RecordCacheLookup records a formatter cache hit or miss.
	RecordCacheLookup(ctx context.Context, meta FilterMeta, hit bool)
}

type metricsImpl struct {
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
	cacheHits    metric.Int64Counter
	cacheMisses  metric.Int64Counter
}

// NewMetrics creates the filter instruments on meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	m := &metricsImpl{}
	var err error

	if m.totalCount, err = meter.Int64Counter(MetricFilterTotal,
		metric.WithDescription("Total number of filter invocations on string values"),
		metric.WithUnit("{call}"),
	); err != nil {
		return nil, err
	}

	if m.errorCount, err = meter.Int64Counter(MetricFilterErrors,
		metric.WithDescription("Total number of filter invocations rejected as invalid input"),
		metric.WithUnit("{error}"),
	); err != nil {
		return nil, err
	}

	if m.durationHist, err = meter.Float64Histogram(MetricFilterDuration,
		metric.WithDescription("Filter invocation duration in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}

	if m.cacheHits, err = meter.Int64Counter(MetricCacheHits,
		metric.WithDescription("Formatter cache hits"),
		metric.WithUnit("{lookup}"),
	); err != nil {
		return nil, err
	}

	if m.cacheMisses, err = meter.Int64Counter(MetricCacheMisses,
		metric.WithDescription("Formatter cache misses"),
		metric.WithUnit("{lookup}"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *metricsImpl) RecordFilter(ctx context.Context, meta FilterMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(metricAttrs(meta)...)

	m.totalCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration)/float64(time.Millisecond), opt)
}

func (m *metricsImpl) RecordCacheLookup(ctx context.Context, meta FilterMeta, hit bool) {
	opt := metric.WithAttributes(metricAttrs(meta)...)
	if hit {
		m.cacheHits.Add(ctx, 1, opt)
	} else {
		m.cacheMisses.Add(ctx, 1, opt)
	}
}

// metricAttrs keeps cardinality bounded: no pattern, no fingerprint.
func metricAttrs(meta FilterMeta) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("filter.name", meta.FilterName()),
		attribute.String("filter.locale", meta.Locale),
	}
}

type noopMetrics struct{}

// NopMetrics returns a Metrics that records nothing.
func NopMetrics() Metrics {
	return noopMetrics{}
}

func (noopMetrics) RecordFilter(ctx context.Context, meta FilterMeta, duration time.Duration, err error) {
}

func (noopMetrics) RecordCacheLookup(ctx context.Context, meta FilterMeta, hit bool) {}
