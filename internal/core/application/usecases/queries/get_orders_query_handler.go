package queries

import (
	"context"
	"fmt"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/core/ports"
)

// GetOrdersQueryHandler picks the listing by role: customers see the orders
// they placed, drivers the orders they took, owners the orders of every
// restaurant they own.
type GetOrdersQueryHandler struct {
	orders  ports.OrderRepository
	catalog ports.CatalogRepository
}

func NewGetOrdersQueryHandler(orders ports.OrderRepository, catalog ports.CatalogRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders, catalog: catalog}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	filter := ports.OrderFilter{Status: query.Status()}

	var (
		found []*order.Order
		err   error
	)
	switch actor.Role() {
	case principal.Customer:
		found, err = h.orders.ListByCustomer(ctx, actor.ID(), filter)
	case principal.Delivery:
		found, err = h.orders.ListByDriver(ctx, actor.ID(), filter)
	case principal.Owner:
		restaurantIDs, listErr := h.catalog.ListRestaurantIDsByOwner(ctx, actor.ID())
		if listErr != nil {
			return nil, listErr
		}
		if len(restaurantIDs) == 0 {
			return []OrderResponse{}, nil
		}
		found, err = h.orders.ListByRestaurants(ctx, restaurantIDs, filter)
	default:
		return nil, fmt.Errorf("unsupported role %q", actor.Role())
	}
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(found))
	for _, o := range found {
		responses = append(responses, NewOrderResponse(o))
	}
	return responses, nil
}
