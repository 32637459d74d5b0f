package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EscrowMetrics covers the order lifecycle and the payment gateway.
type EscrowMetrics struct {
	OrdersCreatedTotal         prometheus.CounterVec
	OrdersCreatedAmountTotal   prometheus.CounterVec
	OrdersCompletedTotal       prometheus.CounterVec
	OrdersCompletedAmountTotal prometheus.CounterVec
	DisputesOpenedTotal        prometheus.CounterVec
	CommissionTotal            prometheus.CounterVec
	PayoutTotal                prometheus.CounterVec
	GatewayErrorsTotal         prometheus.CounterVec
	PaymentPollDuration        prometheus.HistogramVec
}

func NewEscrowMetrics() *EscrowMetrics {
	return &EscrowMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Общее количество созданных заказов",
			},
			[]string{"currency"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Общая сумма созданных заказов",
			},
			[]string{"currency"},
		),

		OrdersCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_completed_total",
				Help: "Общее количество завершенных заказов",
			},
			[]string{"currency"},
		),

		OrdersCompletedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_completed_amount_total",
				Help: "Общая сумма выплат продавцам",
			},
			[]string{"currency"},
		),

		DisputesOpenedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "disputes_opened_total",
				Help: "Общее количество открытых диспутов",
			},
			[]string{"currency"},
		),

		CommissionTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "platform_commission_total",
				Help: "Общая сумма комиссий платформы",
			},
			[]string{"currency"},
		),

		PayoutTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seller_payout_total",
				Help: "Общая сумма, выплаченная продавцам",
			},
			[]string{"currency"},
		),

		GatewayErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_errors_total",
				Help: "Количество ошибок платежного шлюза",
			},
			[]string{"operation"},
		),

		PaymentPollDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_poll_duration_seconds",
				Help:    "Время опроса статуса платежа",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"status"},
		),
	}
}

func (m *EscrowMetrics) RecordOrderCreated(currency string, amount, commission float64) {
	m.OrdersCreatedTotal.WithLabelValues(currency).Inc()
	m.OrdersCreatedAmountTotal.WithLabelValues(currency).Add(amount)
	m.CommissionTotal.WithLabelValues(currency).Add(commission)
}

func (m *EscrowMetrics) RecordOrderCompleted(currency string, payout float64) {
	m.OrdersCompletedTotal.WithLabelValues(currency).Inc()
	m.OrdersCompletedAmountTotal.WithLabelValues(currency).Add(payout)
	m.PayoutTotal.WithLabelValues(currency).Add(payout)
}

func (m *EscrowMetrics) RecordDisputeOpened(currency string) {
	m.DisputesOpenedTotal.WithLabelValues(currency).Inc()
}

func (m *EscrowMetrics) RecordGatewayError(operation string) {
	m.GatewayErrorsTotal.WithLabelValues(operation).Inc()
}

func (m *EscrowMetrics) RecordPaymentPollDuration(status string, durationSeconds float64) {
	m.PaymentPollDuration.WithLabelValues(status).Observe(durationSeconds)
}
