package queries_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByCustomer(ctx context.Context, id kernel.UUID, f ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, id, f)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByDriver(ctx context.Context, id kernel.UUID, f ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, id, f)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByRestaurants(ctx context.Context, ids []kernel.UUID, f ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, ids, f)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) GetRestaurant(ctx context.Context, id kernel.UUID) (catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(catalog.Restaurant)
	return r, args.Error(1)
}

func (m *MockCatalog) GetDish(ctx context.Context, id kernel.UUID) (catalog.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(catalog.Dish)
	return d, args.Error(1)
}

func (m *MockCatalog) ListRestaurantIDsByOwner(ctx context.Context, id kernel.UUID) ([]kernel.UUID, error) {
	args := m.Called(ctx, id)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

func newPrincipal(t *testing.T, role principal.Role) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), "someone@eats.test", role)
	require.NoError(t, err)
	return p
}

func storedOrder(t *testing.T, customer, owner kernel.UUID, driver *kernel.UUID) *order.Order {
	t.Helper()
	restaurant, err := order.NewRestaurant(kernel.NewUUID(), owner)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), []order.ItemOption{{Name: "size", Choice: "large"}})
	require.NoError(t, err)
	now := time.Now().UTC()
	o, err := order.RestoreOrder(kernel.RestoreEntity(kernel.NewUUID(), now, now), order.Cooking,
		decimal.NewFromInt(15), customer, restaurant, driver, []order.Item{item}, 1)
	require.NoError(t, err)
	return o
}
