package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	reportsTotal      *prometheus.CounterVec
	recordsGauge      *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the record store metrics on the default registry.
func NewPrometheusMetrics() MetricsRecorderInterface {
	return NewPrometheusMetricsWithRegistry(prometheus.DefaultRegisterer)
}

func NewPrometheusMetricsWithRegistry(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_store_operations_total",
				Help: "Total number of record store operations",
			},
			[]string{"operation", "status"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "record_store_operation_duration_milliseconds",
				Help:    "Record store operation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		reportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_store_reports_total",
				Help: "Total number of category reports generated",
			},
			[]string{"kind", "status"},
		),
		recordsGauge: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "record_store_records_gauge",
				Help: "Number of records held by each object store",
			},
			[]string{"store"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "record_store.operation":
		if operation := tags["operation"]; operation != "" {
			m.operationsTotal.WithLabelValues(operation, tags["status"]).Inc()
		}
	case "record_store.report":
		if kind := tags["kind"]; kind != "" {
			m.reportsTotal.WithLabelValues(kind, tags["status"]).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if operation, ok := strings.CutPrefix(name, "record_store."); ok {
		m.operationDuration.WithLabelValues(operation).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "record_store.records":
		if store := tags["store"]; store != "" {
			m.recordsGauge.WithLabelValues(store).Set(value)
		}
	}
}
