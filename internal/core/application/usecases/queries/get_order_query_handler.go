package queries

import (
	"context"
	"errors"
	"fmt"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// GetOrderQueryHandler returns an order to its participants only. Others get
// order.ErrNotParticipant.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return OrderResponse{}, fmt.Errorf("%w: %w", ErrOrderNotFound, err)
		}
		return OrderResponse{}, err
	}

	if !o.CanBeSeenBy(query.Actor()) {
		return OrderResponse{}, order.ErrNotParticipant
	}

	return NewOrderResponse(o), nil
}
