package orderservice_test

import (
	"context"
	"errors"
	"sync"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// memOrders keeps detached copies so that callers can't mutate stored state.
type memOrders struct {
	mu     sync.Mutex
	rows   map[kernel.UUID]*order.Order
	events []order.Event

	// beforeUpdate runs inside Update before the version check.
	beforeUpdate func(id kernel.UUID)
}

func newMemOrders() *memOrders {
	return &memOrders{rows: map[kernel.UUID]*order.Order{}}
}

func detach(o *order.Order, version int64) *order.Order {
	c, err := order.RestoreOrder(o.Entity, o.Status(), o.Total(), o.CustomerID(), o.Restaurant(), o.DriverID(), o.Items(), version)
	if err != nil {
		panic(err)
	}
	return c
}

func (m *memOrders) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *memOrders) bumpVersion(id kernel.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := m.rows[id]
	m.rows[id] = detach(o, o.Version()+1)
}

func (m *memOrders) Add(_ context.Context, o *order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[o.ID()] = detach(o, o.Version())
	m.events = append(m.events, o.DomainEvents()...)
	return nil
}

func (m *memOrders) Update(_ context.Context, o *order.Order) error {
	if m.beforeUpdate != nil {
		m.beforeUpdate(o.ID())
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.rows[o.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	if stored.Version() != o.ExpectedVersion() {
		return errs.NewVersionIsInvalidError("order")
	}
	m.rows[o.ID()] = detach(o, o.Version())
	m.events = append(m.events, o.DomainEvents()...)
	return nil
}

func (m *memOrders) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.rows[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return detach(o, o.Version()), nil
}

func (m *memOrders) list(match func(*order.Order) bool, f ports.OrderFilter) []*order.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*order.Order, 0)
	for _, o := range m.rows {
		if f.Status != nil && o.Status() != *f.Status {
			continue
		}
		if match(o) {
			out = append(out, detach(o, o.Version()))
		}
	}
	return out
}

func (m *memOrders) ListByCustomer(_ context.Context, id kernel.UUID, f ports.OrderFilter) ([]*order.Order, error) {
	return m.list(func(o *order.Order) bool { return o.CustomerID().IsEqual(id) }, f), nil
}

func (m *memOrders) ListByDriver(_ context.Context, id kernel.UUID, f ports.OrderFilter) ([]*order.Order, error) {
	return m.list(func(o *order.Order) bool { return o.DriverID() != nil && o.DriverID().IsEqual(id) }, f), nil
}

func (m *memOrders) ListByRestaurants(_ context.Context, ids []kernel.UUID, f ports.OrderFilter) ([]*order.Order, error) {
	return m.list(func(o *order.Order) bool {
		for _, id := range ids {
			if o.Restaurant().ID().IsEqual(id) {
				return true
			}
		}
		return false
	}, f), nil
}

// memUoW queues writes until Commit.
type memUoW struct {
	store   *memOrders
	pending []func(context.Context) error
	begun   bool
}

func (u *memUoW) Begin(context.Context) error {
	u.begun = true
	return nil
}

func (u *memUoW) Commit(ctx context.Context) error {
	if !u.begun {
		return errors.New("no transaction")
	}
	for _, apply := range u.pending {
		if err := apply(ctx); err != nil {
			return err
		}
	}
	u.pending, u.begun = nil, false
	return nil
}

func (u *memUoW) Rollback(context.Context) error {
	if !u.begun {
		return errors.New("no transaction")
	}
	u.pending, u.begun = nil, false
	return nil
}

func (u *memUoW) OrderRepository() ports.OrderRepository {
	return &txOrders{memOrders: u.store, uow: u}
}

type txOrders struct {
	*memOrders
	uow *memUoW
}

func (r *txOrders) Add(_ context.Context, o *order.Order) error {
	r.uow.pending = append(r.uow.pending, func(ctx context.Context) error { return r.memOrders.Add(ctx, o) })
	return nil
}

// Update checks the version eagerly, as a row lock would.
func (r *txOrders) Update(ctx context.Context, o *order.Order) error {
	return r.memOrders.Update(ctx, o)
}

type uowFactory struct{ store *memOrders }

func (f uowFactory) Create() commands.OrderUoW {
	return &memUoW{store: f.store}
}

type memCatalog struct {
	restaurants map[kernel.UUID]catalog.Restaurant
	dishes      map[kernel.UUID]catalog.Dish
	failWith    error
}

func newMemCatalog() *memCatalog {
	return &memCatalog{restaurants: map[kernel.UUID]catalog.Restaurant{}, dishes: map[kernel.UUID]catalog.Dish{}}
}

func (c *memCatalog) GetRestaurant(_ context.Context, id kernel.UUID) (catalog.Restaurant, error) {
	if c.failWith != nil {
		return catalog.Restaurant{}, c.failWith
	}
	r, ok := c.restaurants[id]
	if !ok {
		return catalog.Restaurant{}, errs.NewObjectNotFoundError("restaurant", id)
	}
	return r, nil
}

func (c *memCatalog) GetDish(_ context.Context, id kernel.UUID) (catalog.Dish, error) {
	d, ok := c.dishes[id]
	if !ok {
		return catalog.Dish{}, errs.NewObjectNotFoundError("dish", id)
	}
	return d, nil
}

func (c *memCatalog) ListRestaurantIDsByOwner(_ context.Context, owner kernel.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0)
	for id, r := range c.restaurants {
		if r.OwnerID().IsEqual(owner) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type memIdempotency struct {
	mu     sync.Mutex
	locks  map[string]bool
	values map[string]string
}

func newMemIdempotency() *memIdempotency {
	return &memIdempotency{locks: map[string]bool{}, values: map[string]string{}}
}

func (m *memIdempotency) TryLock(_ context.Context, scope, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[scope+key] {
		return false, nil
	}
	m.locks[scope+key] = true
	return true, nil
}

func (m *memIdempotency) Remember(_ context.Context, scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[scope+key] = value
	return nil
}

func (m *memIdempotency) Recall(_ context.Context, scope, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[scope+key]
	return v, ok, nil
}

func (m *memIdempotency) Release(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, scope+key)
	return nil
}
