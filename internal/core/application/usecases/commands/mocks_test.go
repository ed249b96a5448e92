package commands_test

import (
	"context"
	"testing"
	"time"

	"restobot/internal/core/application/usecases/commands"
	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/core/domain/model/menu"
	"restobot/internal/core/domain/model/order"
	"restobot/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var handlerNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return handlerNow }

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerName string) ([]*order.Order, error) {
	args := m.Called(ctx, customerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuCatalog struct{ mock.Mock }

func (m *MockMenuCatalog) Lookup(ctx context.Context, itemID string) (menu.Item, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(menu.Item), args.Error(1)
}

func (m *MockMenuCatalog) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMenuCatalog) ItemsInCategory(ctx context.Context, category string) ([]menu.Item, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Item), args.Error(1)
}

func mustMenuItem(t *testing.T, id, name, category, price string) menu.Item {
	t.Helper()

	money, err := kernel.MoneyFromString(price)
	require.NoError(t, err)

	item, err := menu.NewItem(id, name, category, money, "")
	require.NoError(t, err)
	return item
}

func mustSelection(t *testing.T, menuItemID string, quantity int) commands.ItemSelection {
	t.Helper()

	selection, err := commands.NewItemSelection(menuItemID, quantity)
	require.NoError(t, err)
	return selection
}

func mustPendingOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()

	money, err := kernel.MoneyFromString("12.99")
	require.NoError(t, err)

	item, err := order.NewItem("1", "Margherita Pizza", 1, money)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(id, "Alice", []order.Item{item}, handlerNow.Add(-10*time.Minute))
	require.NoError(t, err)
	return aggregate
}
