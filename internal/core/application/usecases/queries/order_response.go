// Package queries contains read operations. Handlers read through repository
// ports and return response structs ready for the transport layer.
package queries

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID           kernel.UUID         `json:"id"`
	Status       order.Status        `json:"status"`
	Total        string              `json:"total"`
	CustomerID   kernel.UUID         `json:"customerId"`
	RestaurantID kernel.UUID         `json:"restaurantId"`
	DriverID     *kernel.UUID        `json:"driverId,omitempty"`
	Items        []OrderItemResponse `json:"items"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

type OrderItemResponse struct {
	DishID  kernel.UUID        `json:"dishId"`
	Options []order.ItemOption `json:"options"`
}

// NewOrderResponse maps an aggregate to its read model. Commands reuse it to
// echo the changed order.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		opts := item.Options()
		if opts == nil {
			opts = []order.ItemOption{}
		}
		items = append(items, OrderItemResponse{DishID: item.DishID(), Options: opts})
	}

	return OrderResponse{
		ID:           o.ID(),
		Status:       o.Status(),
		Total:        o.Total().StringFixed(2),
		CustomerID:   o.CustomerID(),
		RestaurantID: o.Restaurant().ID(),
		DriverID:     o.DriverID(),
		Items:        items,
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}
