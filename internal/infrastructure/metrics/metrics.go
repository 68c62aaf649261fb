package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CheckoutMetrics holds the Prometheus instruments for the checkout flow.
//
// Fan-out side effects are fire-and-forget; these counters are how their
// outcomes stay observable without blocking the payment response.

type CheckoutMetrics struct {
	// Charges created against the gateway, by resulting status.
	ChargesCreatedTotal *prometheus.CounterVec

	// Status polls, by status returned to the caller.
	StatusPollsTotal *prometheus.CounterVec

	// Purchase conversions actually claimed and dispatched (at most one
	// per charge id).
	PurchaseReportsTotal prometheus.Counter

	// Background fan-out tasks, by task name and outcome (ok|error|dropped).
	FanoutTasksTotal *prometheus.CounterVec

	// Fan-out task latency, by task name.
	FanoutTaskDuration *prometheus.HistogramVec
}

// NewCheckoutMetrics registers the checkout instruments with reg. Pass
// prometheus.DefaultRegisterer in main; tests pass a fresh registry.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	factory := promauto.With(reg)
	return &CheckoutMetrics{
		ChargesCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pix_charges_created_total",
				Help: "PIX charges created via the payment gateway",
			},
			[]string{"status"},
		),
		StatusPollsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pix_status_polls_total",
				Help: "Charge status polls served",
			},
			[]string{"status"},
		),
		PurchaseReportsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pix_purchase_reports_total",
				Help: "Purchase conversions claimed and dispatched",
			},
		),
		FanoutTasksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fanout_tasks_total",
				Help: "Background fan-out tasks by outcome",
			},
			[]string{"task", "outcome"},
		),
		FanoutTaskDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fanout_task_duration_seconds",
				Help:    "Background fan-out task latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"task"},
		),
	}
}
