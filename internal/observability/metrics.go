package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/garretthaima/escalation-league/internal/domain/event"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "escalation_league"

// Metrics owns a private prometheus registry with the league counters.
type Metrics struct {
	registry *prometheus.Registry

	ledgerOps          *prometheus.CounterVec
	ledgerParticipants *prometheus.CounterVec
	events             *prometheus.CounterVec
	podsCompleted      prometheus.Counter
	phaseTransitions   *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ledgerOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ledger_operations_total",
			Help:      "Stats ledger applications and reversals.",
		}, []string{"direction"}),
		ledgerParticipants: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "ledger_participants_total",
			Help:      "Participant rows touched by the stats ledger.",
		}, []string{"direction"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "domain_events_total",
			Help:      "Domain events delivered by the dispatcher.",
		}, []string{"event"}),
		podsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "pods_completed_total",
			Help:      "Pods that reached the complete status.",
		}),
		phaseTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tournament_phase_transitions_total",
			Help:      "League phase changes by target phase.",
		}, []string{"phase"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ledgerOps,
		m.ledgerParticipants,
		m.events,
		m.podsCompleted,
		m.phaseTransitions,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) LedgerApplied(_ string, participants int) {
	m.ledgerOps.WithLabelValues("apply").Inc()
	m.ledgerParticipants.WithLabelValues("apply").Add(float64(participants))
}

func (m *Metrics) LedgerReversed(_ string, participants int) {
	m.ledgerOps.WithLabelValues("reverse").Inc()
	m.ledgerParticipants.WithLabelValues("reverse").Add(float64(participants))
}

func (m *Metrics) ObserveEvent(e event.Event) {
	m.events.WithLabelValues(string(e.Name)).Inc()

	switch e.Name {
	case event.PodCompleted:
		m.podsCompleted.Inc()
	case event.TournamentPhaseChanged:
		m.phaseTransitions.WithLabelValues(e.Phase).Inc()
	}
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
