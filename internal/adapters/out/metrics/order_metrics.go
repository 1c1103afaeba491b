// Package metrics exports order lifecycle counters to Prometheus.
package metrics

import (
	"eats/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics implements orderservice.Metrics.
type OrderMetrics struct {
	placed      prometheus.Counter
	transitions *prometheus.CounterVec
	taken       prometheus.Counter
}

// NewOrderMetrics registers the collectors with reg.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	factory := promauto.With(reg)
	return &OrderMetrics{
		placed: factory.NewCounter(prometheus.CounterOpts{
			Name: "eats_orders_placed_total",
			Help: "Orders placed",
		}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "eats_order_status_transitions_total",
			Help: "Order status changes by target status",
		}, []string{"status"}),
		taken: factory.NewCounter(prometheus.CounterOpts{
			Name: "eats_orders_taken_total",
			Help: "Orders taken by a delivery agent",
		}),
	}
}

func (m *OrderMetrics) OrderPlaced() {
	m.placed.Inc()
}

func (m *OrderMetrics) OrderStatusChanged(status order.Status) {
	m.transitions.WithLabelValues(status.String()).Inc()
}

func (m *OrderMetrics) OrderTaken() {
	m.taken.Inc()
}
