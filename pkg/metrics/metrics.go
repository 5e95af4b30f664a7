// Package metrics holds the Prometheus collectors for runs, targets, lineage
// records and witness submissions.
//
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lineage"

// Metrics holds all the Prometheus metrics for lineage
type Metrics struct {
	RunsTotal          prometheus.Counter
	TargetsTotal       *prometheus.CounterVec
	TargetDuration     prometheus.Histogram
	RecordsTotal       prometheus.Counter
	RecordFailures     *prometheus.CounterVec
	WitnessSubmissions *prometheus.CounterVec
	ChainSequence      prometheus.Gauge
	EventPublishErrors prometheus.Counter
}

// New creates a new Metrics instance registered with reg. A nil reg uses the
// default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		RunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of orchestration runs completed",
		}),
		TargetsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "targets_total",
			Help:      "Total number of targets analyzed, by status",
		}, []string{"status"}),
		TargetDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "target_duration_seconds",
			Help:      "Wall time of single target analysis jobs",
			Buckets:   prometheus.DefBuckets,
		}),
		RecordsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Total number of lineage records persisted",
		}),
		RecordFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_failures_total",
			Help:      "Total number of failed lineage recordings, by phase",
		}, []string{"phase"}),
		WitnessSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "witness_submissions_total",
			Help:      "Total number of witness submissions, by status",
		}, []string{"status"}),
		ChainSequence: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chain_sequence",
			Help:      "Sequence number of the last persisted lineage record",
		}),
		EventPublishErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_publish_errors_total",
			Help:      "Total number of record events that failed to publish",
		}),
	}
}

// ObserveRun records a completed run.
func (m *Metrics) ObserveRun() {
	if m == nil {
		return
	}
	m.RunsTotal.Inc()
}

// ObserveTarget records one analyzed target.
func (m *Metrics) ObserveTarget(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.TargetsTotal.WithLabelValues(status).Inc()
	m.TargetDuration.Observe(d.Seconds())
}

// ObserveRecord records a persisted lineage record.
func (m *Metrics) ObserveRecord(sequence int64) {
	if m == nil {
		return
	}
	m.RecordsTotal.Inc()
	m.ChainSequence.Set(float64(sequence))
}

// ObserveRecordFailure records a recording that failed in phase.
func (m *Metrics) ObserveRecordFailure(phase string) {
	if m == nil {
		return
	}
	m.RecordFailures.WithLabelValues(phase).Inc()
}

// ObserveWitness records a witness submission outcome.
func (m *Metrics) ObserveWitness(status string) {
	if m == nil {
		return
	}
	m.WitnessSubmissions.WithLabelValues(status).Inc()
}

// IncrementEventPublishErrors increments the event_publish_errors_total counter
func (m *Metrics) IncrementEventPublishErrors() {
	if m == nil {
		return
	}
	m.EventPublishErrors.Inc()
}
