package queries

import (
	"errors"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists the orders a principal is involved in, optionally
// filtered by status.
//
// Example:
//
//	cooking := order.Cooking
//	query, err := NewGetOrdersQuery(owner, &cooking)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	actor  principal.Principal
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery builds the query. A nil status lists every status.
func NewGetOrdersQuery(actor principal.Principal, status *order.Status) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		s := *status
		status = &s
	}
	return GetOrdersQuery{actor: actor, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Actor() principal.Principal {
	return q.actor
}

func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}
