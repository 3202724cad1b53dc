// Package metrics holds the Prometheus collectors of the service. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vibecheck"

type Metrics struct {
	feedLoads        *prometheus.CounterVec
	feedQuarantined  prometheus.Counter
	feedStaleDropped prometheus.Counter
	feedSize         prometheus.Gauge
	profileFetches   *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		feedLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_loads_total",
			Help:      "Event list loads by the source that was served",
		}, []string{"source"}),
		feedQuarantined: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_quarantined_total",
			Help:      "Remote event records rejected at the mapping boundary",
		}),
		feedStaleDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_stale_results_total",
			Help:      "Completed loads discarded because a newer load was issued",
		}),
		feedSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "feed_events",
			Help:      "Number of events in the active list",
		}),
		profileFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_fetches_total",
			Help:      "Profile lookups by outcome",
		}, []string{"result"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(
		m.feedLoads,
		m.feedQuarantined,
		m.feedStaleDropped,
		m.feedSize,
		m.profileFetches,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) EventsLoaded(source string, quarantined int) {
	if m == nil {
		return
	}
	m.feedLoads.WithLabelValues(source).Inc()
	m.feedQuarantined.Add(float64(quarantined))
}

func (m *Metrics) FeedApplied(size int) {
	if m == nil {
		return
	}
	m.feedSize.Set(float64(size))
}

func (m *Metrics) FeedStaleDropped() {
	if m == nil {
		return
	}
	m.feedStaleDropped.Inc()
}

// ProfileFetched records one lookup; result is found, missing or error.
func (m *Metrics) ProfileFetched(result string) {
	if m == nil {
		return
	}
	m.profileFetches.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
