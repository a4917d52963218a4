// Package observability provides the Prometheus metrics the stores and
// HTTP layer report into. All recording methods are nil-safe so the
// stores can run without a collector in tests and tooling.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects store-level counters and storage latency.
type Metrics struct {
	signIns       *prometheus.CounterVec
	registrations prometheus.Counter
	postOps       *prometheus.CounterVec
	storageWrites prometheus.Histogram
}

// NewMetrics creates a collector and registers it with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		signIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inkwell_sign_ins_total",
			Help: "Sign-in attempts by result.",
		}, []string{"result"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inkwell_registrations_total",
			Help: "Successful registrations.",
		}),
		postOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inkwell_post_operations_total",
			Help: "Post mutations by operation.",
		}, []string{"operation"}),
		storageWrites: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "inkwell_storage_write_seconds",
			Help:    "Latency of whole-document storage writes.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.signIns, m.registrations, m.postOps, m.storageWrites)
	return m
}

// RecordSignIn counts a sign-in attempt.
func (m *Metrics) RecordSignIn(ok bool) {
	if m == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	m.signIns.WithLabelValues(result).Inc()
}

// RecordRegistration counts a successful registration.
func (m *Metrics) RecordRegistration() {
	if m == nil {
		return
	}
	m.registrations.Inc()
}

// RecordPostOperation counts a post mutation ("create", "update", "delete").
func (m *Metrics) RecordPostOperation(operation string) {
	if m == nil {
		return
	}
	m.postOps.WithLabelValues(operation).Inc()
}

// RecordStorageWrite records the latency of one whole-document write.
func (m *Metrics) RecordStorageWrite(d time.Duration) {
	if m == nil {
		return
	}
	m.storageWrites.Observe(d.Seconds())
}
