package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Checkout and confirm outcomes.
const (
	OutcomeCreated   = "created"
	OutcomeRejected  = "rejected"
	OutcomeSoldOut   = "sold_out"
	OutcomeConfirmed = "confirmed"
	OutcomeAlready   = "already"
	OutcomeFailed    = "failed"
)

// PaymentMetrics records checkout and mock confirmation activity.
type PaymentMetrics struct {
	checkouts     *prometheus.CounterVec
	confirmations *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	ticketsSold   prometheus.Counter
}

// NewPaymentMetrics registers the payment metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewPaymentMetrics(reg prometheus.Registerer) *PaymentMetrics {
	if reg == nil {
		return &PaymentMetrics{}
	}
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkouts_total",
		Help: "Checkout attempts by order type and outcome.",
	}, []string{"type", "outcome"})
	confirmations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_confirmations_total",
		Help: "Mock payment confirmations by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_duration_seconds",
		Help:    "Duration of checkout transactions in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"type"})
	ticketsSold := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tickets_reserved_total",
		Help: "Seats reserved through ticket checkouts.",
	})
	reg.MustRegister(checkouts, confirmations, duration, ticketsSold)
	return &PaymentMetrics{
		checkouts:     checkouts,
		confirmations: confirmations,
		duration:      duration,
		ticketsSold:   ticketsSold,
	}
}

// ObserveCheckout records one checkout attempt.
func (m *PaymentMetrics) ObserveCheckout(orderType, outcome string, took time.Duration) {
	if m == nil || m.checkouts == nil {
		return
	}
	orderType = normalizeLabel(orderType)
	m.checkouts.WithLabelValues(orderType, normalizeLabel(outcome)).Inc()
	m.duration.WithLabelValues(orderType).Observe(took.Seconds())
}

// IncConfirmation increments the confirmation counter.
func (m *PaymentMetrics) IncConfirmation(outcome string) {
	if m == nil || m.confirmations == nil {
		return
	}
	m.confirmations.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// AddTicketsReserved adds qty seats to the reservation counter.
func (m *PaymentMetrics) AddTicketsReserved(qty int) {
	if m == nil || m.ticketsSold == nil || qty <= 0 {
		return
	}
	m.ticketsSold.Add(float64(qty))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
