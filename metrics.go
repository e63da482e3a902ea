package echo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type (
	// MetricsConfig configures the Prometheus instruments built by
	// NewMetrics
	MetricsConfig struct {
		// Namespace is the metrics namespace (default "echo")
		Namespace string

		// Subsystem is the metrics subsystem (default "")
		Subsystem string

		// ConstLabels are constant labels added to all instruments
		ConstLabels prometheus.Labels

		// Registry receives the instruments. Defaults to
		// prometheus.DefaultRegisterer
		Registry prometheus.Registerer
	}

	// Metrics counts property activity, labeled by property name:
	// accepted and rejected writes, history values replayed to late
	// subscribers, live subscribers, and completions. One Metrics may be
	// shared by any number of properties through Config.Metrics. A nil
	// *Metrics is valid and counts nothing
	Metrics struct {
		writesAccepted *prometheus.CounterVec
		writesRejected *prometheus.CounterVec
		valuesReplayed *prometheus.CounterVec
		subscribers    *prometheus.GaugeVec
		completions    *prometheus.CounterVec
	}
)

const DefaultMetricsNamespace = "echo"

// DefaultMetricsConfig returns the default metrics configuration
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: DefaultMetricsNamespace,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// NewMetrics builds the property instruments and registers them with the
// configured registry. Registering the same configuration twice panics,
// so build one Metrics and share it across properties
func NewMetrics(cfg MetricsConfig) *Metrics {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultMetricsNamespace
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(cfg.Registry)
	labels := []string{"prop"}

	return &Metrics{
		writesAccepted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "writes_accepted_total",
			Help:        "Accepted property writes, including seeds",
			ConstLabels: cfg.ConstLabels,
		}, labels),

		writesRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "writes_rejected_total",
			Help:        "Property writes rejected by validation",
			ConstLabels: cfg.ConstLabels,
		}, labels),

		valuesReplayed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "values_replayed_total",
			Help:        "History values replayed to late subscribers",
			ConstLabels: cfg.ConstLabels,
		}, labels),

		subscribers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "subscribers",
			Help:        "Live property subscribers",
			ConstLabels: cfg.ConstLabels,
		}, labels),

		completions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "completions_total",
			Help:        "Properties completed",
			ConstLabels: cfg.ConstLabels,
		}, labels),
	}
}

func (m *Metrics) accepted(name string) {
	if m == nil {
		return
	}
	m.writesAccepted.WithLabelValues(name).Inc()
}

func (m *Metrics) rejected(name string) {
	if m == nil {
		return
	}
	m.writesRejected.WithLabelValues(name).Inc()
}

func (m *Metrics) replayed(name string) {
	if m == nil {
		return
	}
	m.valuesReplayed.WithLabelValues(name).Inc()
}

func (m *Metrics) subscribed(name string) {
	if m == nil {
		return
	}
	m.subscribers.WithLabelValues(name).Inc()
}

func (m *Metrics) unsubscribed(name string) {
	if m == nil {
		return
	}
	m.subscribers.WithLabelValues(name).Dec()
}

func (m *Metrics) completed(name string) {
	if m == nil {
		return
	}
	m.completions.WithLabelValues(name).Inc()
}
