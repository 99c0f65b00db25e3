package http_test

import (
	"context"

	"ruboard/internal/core/application/usecases/commands"
	"ruboard/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockTransitionOrder struct{ mock.Mock }

func (m *MockTransitionOrder) Handle(ctx context.Context, cmd commands.TransitionOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockSetItemAvailability struct{ mock.Mock }

func (m *MockSetItemAvailability) Handle(ctx context.Context, cmd commands.SetItemAvailabilityCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockRecordPriceChange struct{ mock.Mock }

func (m *MockRecordPriceChange) Handle(ctx context.Context, cmd commands.RecordPriceChangeCommand) (commands.RecordPriceChangeResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.RecordPriceChangeResult), args.Error(1)
}

type MockGetOrder struct{ mock.Mock }

func (m *MockGetOrder) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockListOrders struct{ mock.Mock }

func (m *MockListOrders) Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.OrderPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderPage), args.Error(1)
}

type MockSetOrderRemark struct{ mock.Mock }

func (m *MockSetOrderRemark) Handle(ctx context.Context, cmd commands.SetOrderRemarkCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockUpdateProduct struct{ mock.Mock }

func (m *MockUpdateProduct) Handle(ctx context.Context, cmd commands.UpdateProductCommand) (commands.UpdateProductResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.UpdateProductResult), args.Error(1)
}

type MockDeactivateProduct struct{ mock.Mock }

func (m *MockDeactivateProduct) Handle(ctx context.Context, cmd commands.DeactivateProductCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockListPackingLists struct{ mock.Mock }

func (m *MockListPackingLists) Handle(ctx context.Context, query queries.ListPackingListsQuery) (queries.PackingListPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.PackingListPage), args.Error(1)
}

type MockPackingStats struct{ mock.Mock }

func (m *MockPackingStats) Handle(ctx context.Context, query queries.GetPackingStatsQuery) (queries.PackingStats, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.PackingStats), args.Error(1)
}
