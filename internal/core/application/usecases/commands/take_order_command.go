package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrTakeOrderCommandIsNotConstructed = errors.New(
	"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
)

// TakeOrderCommand makes a delivery agent the driver of an order.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	driver  principal.Principal
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewTakeOrderCommand(driver principal.Principal, orderID kernel.UUID) (TakeOrderCommand, error) {
	cmd := TakeOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setDriver(driver),
		cmd.setOrderID(orderID),
	); err != nil {
		return TakeOrderCommand{}, err
	}

	return cmd, nil
}

func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

func (c TakeOrderCommand) Driver() principal.Principal {
	return c.driver
}

func (c TakeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *TakeOrderCommand) setDriver(driver principal.Principal) error {
	if err := driver.Validate(); err != nil {
		return err
	}
	if !driver.HasRole(principal.Delivery) {
		return errs.NewValueIsInvalidError("only delivery agents can take orders")
	}
	c.driver = driver
	return nil
}

func (c *TakeOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}
