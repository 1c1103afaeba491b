package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/logging"
	"eats/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const defaultDishLookupConcurrency = 4

// CreateOrderCommandHandler places orders. Dish lookups run concurrently and
// all of them must succeed before anything is written; the order and its
// outbox event are then committed in one unit of work.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalogRepo, idemStore, 8)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrDishNotFound) {
//	    // nothing was persisted
//	}
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	catalog     ports.CatalogRepository
	idempotency ports.IdempotencyStore
	calculator  services.PriceCalculator
	concurrency int
}

// NewCreateOrderCommandHandler creates the handler. idempotency may be nil,
// in which case idempotency keys are ignored. concurrency bounds parallel
// dish lookups; values below 1 fall back to a small default.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogRepository,
	idempotency ports.IdempotencyStore,
	concurrency int,
) CreateOrderCommandHandler {
	if concurrency < 1 {
		concurrency = defaultDishLookupConcurrency
	}
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		catalog:     catalog,
		idempotency: idempotency,
		calculator:  services.NewPriceCalculator(),
		concurrency: concurrency,
	}
}

// Handle places the order and returns its id. A repeated idempotency key of
// the same customer returns the id of the first order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	key := cmd.IdempotencyKey()
	scope := cmd.Customer().ID().String()
	if key == "" || h.idempotency == nil {
		return h.place(ctx, cmd)
	}

	if id, ok, err := h.recall(ctx, scope, key); err != nil || ok {
		return id, err
	}

	locked, err := h.idempotency.TryLock(ctx, scope, key)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("lock idempotency key: %w", err)
	}
	if !locked {
		// another request may have finished between Recall and TryLock
		if id, ok, recallErr := h.recall(ctx, scope, key); recallErr != nil || ok {
			return id, recallErr
		}
		return kernel.UUID{}, ErrRequestInProgress
	}

	orderID, err := h.place(ctx, cmd)
	if err != nil {
		_ = h.idempotency.Release(ctx, scope, key)
		return kernel.UUID{}, err
	}

	// The order is committed; the lock stays until its TTL so a retry reports
	// ErrRequestInProgress instead of placing a duplicate.
	if err = h.idempotency.Remember(ctx, scope, key, orderID.String()); err != nil {
		logging.FromCtx(ctx).WarnContext(ctx, "idempotency key not remembered",
			"order_id", orderID.String(), "error", err)
	}
	return orderID, nil
}

func (h CreateOrderCommandHandler) recall(ctx context.Context, scope, key string) (kernel.UUID, bool, error) {
	value, ok, err := h.idempotency.Recall(ctx, scope, key)
	if err != nil {
		return kernel.UUID{}, false, fmt.Errorf("recall idempotency key: %w", err)
	}
	if !ok {
		return kernel.UUID{}, false, nil
	}
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, false, fmt.Errorf("recall idempotency key: %w", err)
	}
	return id, true, nil
}

func (h CreateOrderCommandHandler) place(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	restaurant, err := h.catalog.GetRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.UUID{}, fmt.Errorf("%w: %w", ErrRestaurantNotFound, err)
		}
		return kernel.UUID{}, err
	}

	requested := cmd.Items()
	dishes, err := h.lookupDishes(ctx, restaurant.ID(), requested)
	if err != nil {
		return kernel.UUID{}, err
	}

	lines := make([]services.OrderLine, 0, len(requested))
	items := make([]order.Item, 0, len(requested))
	for i, req := range requested {
		item, itemErr := order.NewItem(req.DishID, req.Options)
		if itemErr != nil {
			return kernel.UUID{}, itemErr
		}
		items = append(items, item)
		lines = append(lines, services.OrderLine{Dish: dishes[i], Options: req.Options})
	}

	orderRestaurant, err := order.NewRestaurant(restaurant.ID(), restaurant.OwnerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Customer().ID(),
		orderRestaurant,
		items,
		h.calculator.ComputeOrderTotal(lines),
		time.Now().UTC(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}

// lookupDishes fetches every requested dish. The result is index-aligned with
// items. A dish of another restaurant counts as missing.
func (h CreateOrderCommandHandler) lookupDishes(
	ctx context.Context,
	restaurantID kernel.UUID,
	items []CreateOrderItem,
) ([]catalog.Dish, error) {
	dishes := make([]catalog.Dish, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)
	for i, item := range items {
		g.Go(func() error {
			dish, err := h.catalog.GetDish(gctx, item.DishID)
			if err != nil {
				if errors.Is(err, errs.ErrObjectNotFound) {
					return fmt.Errorf("%w: %w", ErrDishNotFound, err)
				}
				return err
			}
			if !dish.RestaurantID().IsEqual(restaurantID) {
				return fmt.Errorf("%w: %s is not served by restaurant %s", ErrDishNotFound, item.DishID, restaurantID)
			}
			dishes[i] = dish
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dishes, nil
}
