package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus collectors for scenario steps.
type Manager struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	enabled        bool
	constLabels    map[string]string
	registry       prometheus.Registerer

	stepsInvoked     *prometheus.CounterVec
	stepFailures     *prometheus.CounterVec
	stepLatency      *prometheus.HistogramVec
	scoreValue       prometheus.Histogram
	recordsGenerated prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "scorehook",
		subsystem:      "scenario",
		latencyBuckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		enabled:        true,
		constLabels:    map[string]string{},
		registry:       prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.stepsInvoked = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "steps_invoked_total",
		Help:        "Total number of scenario step invocations",
		ConstLabels: m.constLabels,
	}, []string{"function"})

	m.stepFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "step_failures_total",
		Help:        "Total number of scenario step failures",
		ConstLabels: m.constLabels,
	}, []string{"function", "reason"})

	m.stepLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "step_latency_milliseconds",
		Help:        "Scenario step latency in milliseconds",
		Buckets:     m.latencyBuckets,
		ConstLabels: m.constLabels,
	}, []string{"function"})

	m.scoreValue = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "score_value",
		Help:        "Distribution of generated scores",
		Buckets:     prometheus.LinearBuckets(10, 10, 9),
		ConstLabels: m.constLabels,
	})

	m.recordsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "records_generated_total",
		Help:        "Total number of score records written into virtual-user contexts",
		ConstLabels: m.constLabels,
	})
}

// StepInvoked counts one invocation of function.
func (m *Manager) StepInvoked(function string) {
	if !m.enabled {
		return
	}
	m.stepsInvoked.WithLabelValues(function).Inc()
}

// StepFailed counts one failure of function with a short reason.
func (m *Manager) StepFailed(function, reason string) {
	if !m.enabled {
		return
	}
	m.stepFailures.WithLabelValues(function, reason).Inc()
}

// StepLatency records how long function took, in milliseconds.
func (m *Manager) StepLatency(function string, latencyMs float64) {
	if !m.enabled {
		return
	}
	m.stepLatency.WithLabelValues(function).Observe(latencyMs)
}

// RecordGenerated counts a written record and observes its score.
func (m *Manager) RecordGenerated(score int) {
	if !m.enabled {
		return
	}
	m.recordsGenerated.Inc()
	m.scoreValue.Observe(float64(score))
}

// Default returns the process-wide manager backed by the custom registry.
func Default() *Manager {
	return globalManager
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile dumps g in the text exposition format, for the node
// exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if g == nil {
		g = customRegistry
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}
