package commands_test

import (
	"context"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/core/ports"

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
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByDriver(ctx context.Context, id kernel.UUID, f ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, id, f)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByRestaurants(ctx context.Context, ids []kernel.UUID, f ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, ids, f)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *principal.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*principal.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*principal.Account)
	return a, args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*principal.Account, error) {
	args := m.Called(ctx, email)
	a, _ := args.Get(0).(*principal.Account)
	return a, args.Error(1)
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
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) TryLock(ctx context.Context, scope, key string) (bool, error) {
	args := m.Called(ctx, scope, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Remember(ctx context.Context, scope, key, value string) error {
	return m.Called(ctx, scope, key, value).Error(0)
}

func (m *MockIdempotencyStore) Recall(ctx context.Context, scope, key string) (string, bool, error) {
	args := m.Called(ctx, scope, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, scope, key string) error {
	return m.Called(ctx, scope, key).Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Sign(subject string) (string, error) {
	args := m.Called(subject)
	return args.String(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockAccountUoW struct{ mock.Mock }

func (m *MockAccountUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAccountUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAccountUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	return m.Called().Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	return m.Called().Get(0).(commands.AccountUoW)
}

func newPrincipal(t *testing.T, role principal.Role) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), "someone@eats.test", role)
	require.NoError(t, err)
	return p
}
