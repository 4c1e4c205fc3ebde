package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var eventBusDeliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "blockinsight7000",
	Subsystem: "event_bus",
	Name:      "deliveries_total",
	Help:      "Count of event deliveries to bus consumers.",
}, []string{"event", "status"})

// EventBus tracks deliveries to event bus consumers.
type EventBus struct{}

func NewEventBus() *EventBus {
	return &EventBus{}
}

func (m EventBus) ObserveDelivery(event string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	eventBusDeliveriesTotal.WithLabelValues(event, status).Inc()
}
