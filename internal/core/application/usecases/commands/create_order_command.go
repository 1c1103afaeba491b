package commands

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItem is one requested dish with the customer's option picks.
type CreateOrderItem struct {
	DishID  kernel.UUID
	Options []order.ItemOption
}

// CreateOrderCommand represents a customer placing an order at a restaurant.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customer, restaurantID, []CreateOrderItem{
//	    {DishID: pizzaID, Options: []order.ItemOption{{Name: "size", Choice: "large"}}},
//	}, "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer       principal.Principal
	restaurantID   kernel.UUID
	items          []CreateOrderItem
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. An empty item list is
// accepted and yields a zero total. idempotencyKey may be empty.
func NewCreateOrderCommand(
	customer principal.Principal,
	restaurantID kernel.UUID,
	items []CreateOrderItem,
	idempotencyKey string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		idempotencyKey: strings.TrimSpace(idempotencyKey),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Customer() principal.Principal {
	return c.customer
}

func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateOrderCommand) Items() []CreateOrderItem {
	return append([]CreateOrderItem(nil), c.items...)
}

func (c CreateOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CreateOrderCommand) setCustomer(customer principal.Principal) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if !customer.HasRole(principal.Customer) {
		return errs.NewValueIsInvalidError("only customers can place orders")
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	for _, item := range items {
		if err := item.DishID.Validate(); err != nil {
			return err
		}
	}
	c.items = make([]CreateOrderItem, 0, len(items))
	for _, item := range items {
		c.items = append(c.items, CreateOrderItem{
			DishID:  item.DishID,
			Options: append([]order.ItemOption(nil), item.Options...),
		})
	}
	return nil
}
