package commands

import (
	"context"
	"time"

	"eats/internal/core/domain/model/order"
)

// TakeOrderCommandHandler assigns a free order to the requesting driver.
// Two drivers racing for the same order are separated by the version check:
// the loser gets an errs.VersionIsInvalidError.
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewTakeOrderCommandHandler(uowFactory OrderUoWFactory) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{uowFactory: uowFactory}
}

func (h TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := getOrder(ctx, repo, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.AssignDriver(cmd.Driver(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
