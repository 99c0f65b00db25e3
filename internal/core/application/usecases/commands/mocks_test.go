package commands_test

import (
	"context"
	"time"

	"ruboard/internal/core/application/usecases/commands"
	"ruboard/internal/core/domain/model/inventory"
	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/core/domain/model/packing"
	"ruboard/internal/core/domain/model/pricing"
	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

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

type MockOrderNumberSequence struct{ mock.Mock }

func (m *MockOrderNumberSequence) Next(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

type MockPackingListRepository struct{ mock.Mock }

func (m *MockPackingListRepository) Add(ctx context.Context, l *packing.List) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockPackingListRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*packing.List, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*packing.List), args.Error(1)
}

type MockPriceRepository struct{ mock.Mock }

func (m *MockPriceRepository) Append(ctx context.Context, e pricing.Entry) (pricing.Entry, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(pricing.Entry), args.Error(1)
}

func (m *MockPriceRepository) LatestAt(ctx context.Context, code string, at time.Time) (pricing.Entry, error) {
	args := m.Called(ctx, code, at)
	return args.Get(0).(pricing.Entry), args.Error(1)
}

func (m *MockPriceRepository) History(ctx context.Context, code string) ([]pricing.Entry, error) {
	args := m.Called(ctx, code)
	return args.Get(0).([]pricing.Entry), args.Error(1)
}

type MockLotRepository struct{ mock.Mock }

func (m *MockLotRepository) Add(ctx context.Context, l *inventory.Lot) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLotRepository) Update(ctx context.Context, l *inventory.Lot) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLotRepository) GetForUpdate(ctx context.Context, lotNumber string) (*inventory.Lot, error) {
	args := m.Called(ctx, lotNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Lot), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, code string) (*product.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

// MockUoW satisfies every unit of work interface the handlers depend on.
type MockUoW struct {
	mock.Mock
	orders   *MockOrderRepository
	sequence *MockOrderNumberSequence
	packing  *MockPackingListRepository
	prices   *MockPriceRepository
	lots     *MockLotRepository
	products *MockProductRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:   new(MockOrderRepository),
		sequence: new(MockOrderNumberSequence),
		packing:  new(MockPackingListRepository),
		prices:   new(MockPriceRepository),
		lots:     new(MockLotRepository),
		products: new(MockProductRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository { return m.orders }
func (m *MockUoW) OrderNumberSequence() ports.OrderNumberSequence { return m.sequence }
func (m *MockUoW) PackingListRepository() ports.PackingListRepository { return m.packing }
func (m *MockUoW) PriceRepository() ports.PriceRepository { return m.prices }
func (m *MockUoW) LotRepository() ports.LotRepository { return m.lots }
func (m *MockUoW) ProductRepository() ports.ProductRepository { return m.products }

// expectTx registers a Begin that succeeds and a Rollback that may or may not
// be reached after Commit.
func (m *MockUoW) expectTx(ctx context.Context, commit bool) {
	m.On("Begin", ctx).Return(nil).Once()
	if commit {
		m.On("Commit", ctx).Return(nil).Once()
	}
	m.On("Rollback", ctx).Return(nil).Maybe()
}

func (m *MockUoW) assertAll(t mock.TestingT) {
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.sequence.AssertExpectations(t)
	m.packing.AssertExpectations(t)
	m.prices.AssertExpectations(t)
	m.lots.AssertExpectations(t)
	m.products.AssertExpectations(t)
}

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type catalogUoWFactory struct{ uow *MockUoW }

func (f catalogUoWFactory) Create() commands.CatalogUoW { return f.uow }

type lotUoWFactory struct{ uow *MockUoW }

func (f lotUoWFactory) Create() commands.LotUoW { return f.uow }

type MockOrderLocker struct{ mock.Mock }

func (m *MockOrderLocker) Lock(ctx context.Context, id kernel.UUID) (func(context.Context) error, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func(context.Context) error), args.Error(1)
}

var (
	testNow   = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	testClock = kernel.FixedClock{At: testNow}
	testBuyer = order.Buyer{ID: kernel.NewUUID(), Name: "Vostok Trading"}
)

func testProduct(code string) *product.Product {
	p, err := product.NewProduct(code, "홍삼 캔디", "Red ginseng candy", 24, product.Dimensions{})
	if err != nil {
		panic(err)
	}
	return p
}

func testEntry(code string, base, commission int64) pricing.Entry {
	e, err := pricing.RestoreEntry(1, code, base, commission, testNow.AddDate(0, -1, 0), testNow.AddDate(0, -1, 0))
	if err != nil {
		panic(err)
	}
	return e
}

func qty(v int64) *int64 { return &v }
