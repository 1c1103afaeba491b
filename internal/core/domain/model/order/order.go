package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrNotParticipant is returned when the actor is neither the customer,
	// the driver nor the restaurant owner.
	ErrNotParticipant = errors.New("principal is not a participant of the order")

	// ErrCannotEdit is returned when the actor's role may not set the target status.
	ErrCannotEdit = errors.New("principal cannot set this order status")

	ErrAlreadyHasDriver = errors.New("order already has a driver")
)

// Order is the aggregate root for a placed food order.
//
// Order follows these invariants:
//   - exactly one customer and one restaurant, zero or one driver
//   - the total is fixed at creation
//   - status only changes through ChangeStatus
//   - version grows by one per persisted change
type Order struct {
	kernel.Entity

	status     Status
	total      decimal.Decimal
	customerID kernel.UUID
	restaurant Restaurant
	driverID   *kernel.UUID
	items      []Item

	// version is what the next write stores, loadedVersion is what storage
	// held when the aggregate was read.
	version       int64
	loadedVersion int64

	events []Event
	guard  guard.ConstructorGuard
}

// NewOrder places a Pending order. The caller prices the items; the total is
// stored as given.
//
// Example:
//
//	total := calculator.ComputeOrderTotal(lines)
//	o, err := order.NewOrder(kernel.NewUUID(), customer.ID(), restaurant, items, total, time.Now())
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurant Restaurant,
	items []Item,
	total decimal.Decimal,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:  Pending,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		o.setCustomer(customerID),
		o.setRestaurant(restaurant),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}
	o.Entity = kernel.NewEntity(id, now)
	o.items = append([]Item(nil), items...)

	o.raise(EventCreated, now)
	return o, nil
}

// RestoreOrder rebuilds an order read from storage. No events are recorded.
func RestoreOrder(
	entity kernel.Entity,
	status Status,
	total decimal.Decimal,
	customerID kernel.UUID,
	restaurant Restaurant,
	driverID *kernel.UUID,
	items []Item,
	version int64,
) (*Order, error) {
	o := &Order{
		Entity:        entity,
		items:         append([]Item(nil), items...),
		version:       version,
		loadedVersion: version,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entity.ID().Validate(),
		status.Validate(),
		o.setCustomer(customerID),
		o.setRestaurant(restaurant),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}
	o.status = status

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		d := *driverID
		o.driverID = &d
	}

	if version < 1 {
		return nil, errs.NewValueIsOutOfRangeError("version", version, 1, int64(math.MaxInt64))
	}

	return o, nil
}

// Validate ensures the order went through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) Restaurant() Restaurant {
	return o.restaurant
}

// DriverID returns nil until a driver takes the order.
func (o *Order) DriverID() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	d := *o.driverID
	return &d
}

func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Version is the value the next write stores.
func (o *Order) Version() int64 {
	return o.version
}

// ExpectedVersion is the value storage must still hold for an update to apply.
func (o *Order) ExpectedVersion() int64 {
	return o.loadedVersion
}

// CanBeSeenBy applies the participant visibility rule.
func (o *Order) CanBeSeenBy(p principal.Principal) bool {
	return IsParticipant(o, p)
}

// ChangeStatus moves the order to target on behalf of actor. Only the status
// changes; the total and items are untouched.
//
// Checks run in this order:
//   - a role that may set no status at all gets ErrCannotEdit
//   - a non-participant gets ErrNotParticipant
//   - a participant whose role may not set target gets ErrCannotEdit
func (o *Order) ChangeStatus(actor principal.Principal, target Status, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !CanSetAnyStatus(actor.Role()) {
		return ErrCannotEdit
	}
	if !IsParticipant(o, actor) {
		return ErrNotParticipant
	}
	if !CanTransition(actor.Role(), target) {
		return fmt.Errorf("%w: %s may not set %s", ErrCannotEdit, actor.Role(), target)
	}

	o.status = target
	o.markChanged(now)
	o.raise(EventStatusChanged, now)
	return nil
}

// AssignDriver records driver as the delivery agent. An order keeps its first
// driver.
func (o *Order) AssignDriver(driver principal.Principal, now time.Time) error {
	if err := driver.Validate(); err != nil {
		return err
	}
	if !driver.HasRole(principal.Delivery) {
		return fmt.Errorf("%w: %s cannot take orders", ErrCannotEdit, driver.Role())
	}
	if o.driverID != nil {
		return ErrAlreadyHasDriver
	}

	id := driver.ID()
	o.driverID = &id
	o.markChanged(now)
	o.raise(EventDriverAssigned, now)
	return nil
}

func (o *Order) markChanged(now time.Time) {
	o.version = o.loadedVersion + 1
	o.Touch(now)
}

func (o *Order) setCustomer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurant(r Restaurant) error {
	if err := errors.Join(r.id.Validate(), r.ownerID.Validate()); err != nil {
		return err
	}
	o.restaurant = r
	return nil
}

func (o *Order) setTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%s is negative", total))
	}
	o.total = total
	return nil
}
