package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "ruboard/internal/adapters/out/postgres"
	"ruboard/internal/adapters/out/postgres/pgtest"
	"ruboard/internal/core/domain/model/inventory"
	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/core/domain/model/pricing"
	"ruboard/internal/core/ports"

	"github.com/stretchr/testify/suite"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgtest.Container
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	container, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container

	suite.Require().NoError(postgresadapter.Migrate(container.DB))
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(container.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.container.DB.Exec("TRUNCATE TABLE orders, order_items, order_history, order_sequences, " +
		"inventory_lots, price_entries, products, packing_lists RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

var uowNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(number string) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), number, order.Buyer{ID: kernel.NewUUID(), Name: "Vostok Trading"},
		uowNow, order.ActorBuyer, uowNow)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.LotRepository())
	suite.NotNil(uow2.PriceRepository())
	suite.NotNil(uow2.ProductRepository())
	suite.NotNil(uow2.OrderNumberSequence())
	suite.NotNil(uow2.PackingListRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitAndRollbackWithoutBegin() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Error(uow.Commit(ctx))
	suite.Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	seq, err := uow.OrderNumberSequence().Next(ctx, "RU-2026-03")
	suite.Require().NoError(err)
	number, err := order.FormatNumber("RU", uowNow, seq)
	suite.Require().NoError(err)
	o := suite.newOrder(number)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	entry, err := pricing.NewEntry("KR-001", 1000, 120, uowNow, uowNow)
	suite.Require().NoError(err)
	_, err = uow.PriceRepository().Append(ctx, entry)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	got, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("RU-2026-03-0001", got.Number())

	price, err := fresh.PriceRepository().LatestAt(ctx, "KR-001", uowNow)
	suite.Require().NoError(err)
	suite.Equal(int64(1120), price.Final())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder("RU-2026-03-0001")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	lot, err := inventory.NewLot(kernel.NewUUID(), "KR-001", "L-001", nil, uowNow, 10, "WH-1")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.LotRepository().Add(ctx, lot))

	_, err = uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err, "visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.OrderRepository().Get(ctx, o.ID())
	suite.Error(err)

	suite.Require().NoError(fresh.Begin(ctx))
	defer func() { _ = fresh.Rollback(ctx) }()
	_, err = fresh.LotRepository().GetForUpdate(ctx, "L-001")
	suite.Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTracksWrittenAggregates() {
	ctx := context.Background()
	uow := postgresadapter.NewGormUnitOfWorkFactory(suite.container.DB).Create().(*postgresadapter.GormUnitOfWork)
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.newOrder("RU-2026-03-0001")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))

	suite.Equal([]kernel.UUID{o.ID(), o.ID()}, uow.TrackedAggregateIDs())
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIsolationBetweenUnits() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	o1 := suite.newOrder("RU-2026-03-0001")
	o2 := suite.newOrder("RU-2026-03-0002")
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, o1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, o2))

	_, err := uow1.OrderRepository().Get(ctx, o2.ID())
	suite.Error(err, "uncommitted writes stay private")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.OrderRepository().Get(ctx, o1.ID())
	suite.NoError(err)
	_, err = fresh.OrderRepository().Get(ctx, o2.ID())
	suite.Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_AutoCommits() {
	ctx := context.Background()
	o := suite.newOrder("RU-2026-03-0001")
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.NoError(err)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
