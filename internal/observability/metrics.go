package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service-level prometheus collectors.
type Metrics struct {
	Registry *prometheus.Registry

	QuotesComputed       *prometheus.CounterVec
	QuoteDuration        prometheus.Histogram
	ReservationsCreated  prometheus.Counter
	ReservationConflicts prometheus.Counter
	CancellationsTotal   *prometheus.CounterVec
	SchedulerJobRuns     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		QuotesComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keepr_quotes_computed_total",
			Help: "Quotes computed, labelled by outcome.",
		}, []string{"outcome"}),
		QuoteDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "keepr_quote_duration_seconds",
			Help:    "Wall time spent computing a quote.",
			Buckets: prometheus.DefBuckets,
		}),
		ReservationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "keepr_reservations_created_total",
			Help: "Reservations successfully created.",
		}),
		ReservationConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "keepr_reservation_conflicts_total",
			Help: "Booking attempts rejected by the overlap guard.",
		}),
		CancellationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keepr_cancellations_total",
			Help: "Cancellations, labelled by free-window outcome.",
		}, []string{"within_free_window"}),
		SchedulerJobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keepr_scheduler_job_runs_total",
			Help: "Scheduler job executions, labelled by job and outcome.",
		}, []string{"job", "outcome"}),
	}

	m.Registry.MustRegister(
		m.QuotesComputed,
		m.QuoteDuration,
		m.ReservationsCreated,
		m.ReservationConflicts,
		m.CancellationsTotal,
		m.SchedulerJobRuns,
	)
	return m
}
