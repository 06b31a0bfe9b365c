// Package metrics exposes HTTP and business counters to Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "shift_cashbox"

// Recorder holds every collector. It implements portssvc.MetricsRecorder.
type Recorder struct {
	httpRequestsTotal      *prometheus.CounterVec
	httpRequestDuration    *prometheus.HistogramVec
	shiftsOpened           *prometheus.CounterVec
	shiftsClosed           *prometheus.CounterVec
	movementsRecorded      *prometheus.CounterVec
	incidentsRecorded      *prometheus.CounterVec
	reconciliationMismatch *prometheus.CounterVec
	notificationsTotal     *prometheus.CounterVec
}

var _ portssvc.MetricsRecorder = (*Recorder)(nil)

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		shiftsOpened: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "shifts_opened_total",
				Help:      "Shifts started, by period",
			},
			[]string{"period"},
		),
		shiftsClosed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "shifts_closed_total",
				Help:      "Shifts closed, by period",
			},
			[]string{"period"},
		),
		movementsRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "movements_recorded_total",
				Help:      "Cash movements recorded, by box and direction",
			},
			[]string{"box", "type"},
		),
		incidentsRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "incidents_recorded_total",
				Help:      "Incidents reported, by box",
			},
			[]string{"box"},
		),
		reconciliationMismatch: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reconciliation_mismatches_total",
				Help:      "Declared cash that did not match the expected amount at close",
			},
			[]string{"box", "direction"},
		),
		notificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notification_dispatches_total",
				Help:      "Notification delivery attempts, by channel and outcome",
			},
			[]string{"channel", "outcome"},
		),
	}

	reg.MustRegister(
		r.httpRequestsTotal,
		r.httpRequestDuration,
		r.shiftsOpened,
		r.shiftsClosed,
		r.movementsRecorded,
		r.incidentsRecorded,
		r.reconciliationMismatch,
		r.notificationsTotal,
	)
	return r
}

// ObserveHTTP records one served request.
func (r *Recorder) ObserveHTTP(method, path string, status int, duration time.Duration) {
	if path == "" {
		path = "undefined"
	}
	r.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(path).Observe(duration.Seconds())
}

func (r *Recorder) ShiftOpened(period domain.ShiftPeriod) {
	r.shiftsOpened.WithLabelValues(string(period)).Inc()
}

func (r *Recorder) ShiftClosed(period domain.ShiftPeriod) {
	r.shiftsClosed.WithLabelValues(string(period)).Inc()
}

func (r *Recorder) MovementRecorded(box domain.BoxID, movementType domain.MovementType) {
	r.movementsRecorded.WithLabelValues(string(box), string(movementType)).Inc()
}

func (r *Recorder) IncidentRecorded(box domain.BoxID) {
	r.incidentsRecorded.WithLabelValues(string(box)).Inc()
}

func (r *Recorder) ReconciliationMismatch(box domain.BoxID, direction domain.Direction) {
	r.reconciliationMismatch.WithLabelValues(string(box), string(direction)).Inc()
}

func (r *Recorder) NotificationDispatched(channel string, delivered bool) {
	outcome := "failed"
	if delivered {
		outcome = "delivered"
	}
	r.notificationsTotal.WithLabelValues(channel, outcome).Inc()
}
