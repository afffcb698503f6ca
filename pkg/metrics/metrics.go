package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SlotsBooked           *prometheus.CounterVec
	BookingsIgnored       *prometheus.CounterVec
	SlotsClosed           *prometheus.CounterVec
	SlotsReopened         *prometheus.CounterVec
	ConfirmationsDeclined *prometheus.CounterVec
	Regenerations         *prometheus.CounterVec
	ActiveSessions        prometheus.Gauge
}

// New создает метрики и регистрирует их в глобальном реестре
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		SlotsBooked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "slots_booked_total",
				Help:      "Bookings applied to a slot",
			},
			[]string{"mode"},
		),
		BookingsIgnored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "bookings_ignored_total",
				Help:      "Booking attempts ignored because the slot was expired, full or closed",
			},
			[]string{"mode"},
		),
		SlotsClosed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "slots_closed_total",
				Help:      "Slots closed by an operator or by reaching capacity",
			},
			[]string{"mode", "reason"},
		),
		SlotsReopened: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "slots_reopened_total",
				Help:      "Slots reopened by an operator",
			},
			[]string{"mode"},
		),
		ConfirmationsDeclined: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "confirmations_declined_total",
				Help:      "Close or reopen prompts that were not confirmed",
			},
			[]string{"action"},
		),
		Regenerations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "slot_regenerations_total",
				Help:      "Slot batches generated",
			},
			[]string{"mode", "trigger"},
		),
		ActiveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: serviceName,
				Name:      "active_sessions",
				Help:      "Mounted booking pages",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SlotsBooked,
		m.BookingsIgnored,
		m.SlotsClosed,
		m.SlotsReopened,
		m.ConfirmationsDeclined,
		m.Regenerations,
		m.ActiveSessions,
	)

	return m
}

// Page-level hooks. Nil receiver is a no-op so callers can run without metrics.

func (m *Metrics) SlotBooked(mode string) {
	if m == nil {
		return
	}
	m.SlotsBooked.WithLabelValues(mode).Inc()
}

func (m *Metrics) BookingIgnored(mode string) {
	if m == nil {
		return
	}
	m.BookingsIgnored.WithLabelValues(mode).Inc()
}

func (m *Metrics) SlotClosed(mode, reason string) {
	if m == nil {
		return
	}
	m.SlotsClosed.WithLabelValues(mode, reason).Inc()
}

func (m *Metrics) SlotReopened(mode string) {
	if m == nil {
		return
	}
	m.SlotsReopened.WithLabelValues(mode).Inc()
}

func (m *Metrics) ConfirmationDeclined(action string) {
	if m == nil {
		return
	}
	m.ConfirmationsDeclined.WithLabelValues(action).Inc()
}

func (m *Metrics) SlotsRegenerated(mode, trigger string) {
	if m == nil {
		return
	}
	m.Regenerations.WithLabelValues(mode, trigger).Inc()
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.ActiveSessions.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.ActiveSessions.Dec()
}
