package order

import (
	"time"

	"eats/internal/core/domain/model/kernel"
)

// EventType doubles as the message routing key.
type EventType string

const (
	EventCreated        EventType = "order.created"
	EventStatusChanged  EventType = "order.status_changed"
	EventDriverAssigned EventType = "order.driver_assigned"
)

// Event is recorded by the aggregate and written to the outbox on commit.
type Event struct {
	ID         kernel.UUID  `json:"id"`
	Type       EventType    `json:"type"`
	OrderID    kernel.UUID  `json:"orderId"`
	CustomerID kernel.UUID  `json:"customerId"`
	Restaurant kernel.UUID  `json:"restaurantId"`
	DriverID   *kernel.UUID `json:"driverId,omitempty"`
	Status     Status       `json:"status"`
	Total      string       `json:"total"`
	OccurredAt time.Time    `json:"occurredAt"`
}

func (o *Order) raise(t EventType, now time.Time) {
	var driverID *kernel.UUID
	if o.driverID != nil {
		d := *o.driverID
		driverID = &d
	}
	o.events = append(o.events, Event{
		ID:         kernel.NewUUID(),
		Type:       t,
		OrderID:    o.ID(),
		CustomerID: o.customerID,
		Restaurant: o.restaurant.id,
		DriverID:   driverID,
		Status:     o.status,
		Total:      o.total.StringFixed(2),
		OccurredAt: now,
	})
}

// DomainEvents returns events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event {
	return append([]Event(nil), o.events...)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}
