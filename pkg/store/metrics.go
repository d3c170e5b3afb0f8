package store

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus store instrumentation.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "sessionslot").
	Namespace string

	// Subsystem is the metrics subsystem (default: "store").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for operation duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus store instrumentation.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "sessionslot",
		Subsystem:   "store",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// storeMetrics holds the Prometheus metrics for one instrumented store.
type storeMetrics struct {
	opsTotal    *prometheus.CounterVec
	opDuration  *prometheus.HistogramVec
	valueBytes  prometheus.Histogram
	missesTotal prometheus.Counter
}

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *storeMetrics {
	factory := promauto.With(config.Registry)

	return &storeMetrics{
		opsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "ops_total",
			Help:        "Total number of store operations by op and status",
			ConstLabels: config.ConstLabels,
		}, []string{"op", "status"}),

		opDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "op_duration_seconds",
			Help:        "Store operation duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"op"}),

		valueBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "value_bytes",
			Help:        "Size of written values in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{64, 256, 1024, 4096, 16384, 65536}, // 64B to 64KB
		}),

		missesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "misses_total",
			Help:        "Total number of reads that found no entry",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// InstrumentedStore wraps a Store with Prometheus metrics.
type InstrumentedStore struct {
	next    Store
	metrics *storeMetrics
}

// Instrument wraps a store so every operation records Prometheus metrics.
//
// Metrics collected:
//   - sessionslot_store_ops_total: Counter of operations by op and status
//   - sessionslot_store_op_duration_seconds: Histogram of operation duration
//   - sessionslot_store_value_bytes: Histogram of written value sizes
//   - sessionslot_store_misses_total: Counter of reads that found no entry
//
// Example:
//
//	st := store.Instrument(store.NewMemoryStore(),
//	    store.WithNamespace("myapp"),
//	)
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
func Instrument(next Store, opts ...MetricsOption) *InstrumentedStore {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &InstrumentedStore{
		next:    next,
		metrics: initMetrics(config),
	}
}

// record observes one completed operation.
func (s *InstrumentedStore) record(op string, start time.Time, err error) {
	s.metrics.opDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	status := "success"
	if err != nil {
		status = "error"
	}
	s.metrics.opsTotal.WithLabelValues(op, status).Inc()
}

// Get retrieves the value for key, recording duration, status and misses.
func (s *InstrumentedStore) Get(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	v, ok, err := s.next.Get(ctx, key)
	s.record("get", start, err)
	if err == nil && !ok {
		s.metrics.missesTotal.Inc()
	}
	return v, ok, err
}

// Set writes the value for key, recording duration, status and value size.
func (s *InstrumentedStore) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.record("set", start, err)
	if err == nil {
		s.metrics.valueBytes.Observe(float64(len(value)))
	}
	return err
}

// Delete removes the entry for key, recording duration and status.
func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	s.record("delete", start, err)
	return err
}
