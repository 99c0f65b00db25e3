package queries_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "ruboard/internal/adapters/out/postgres"
	"ruboard/internal/adapters/out/postgres/lotrepo"
	"ruboard/internal/adapters/out/postgres/orderrepo"
	"ruboard/internal/adapters/out/postgres/packinglistrepo"
	"ruboard/internal/adapters/out/postgres/pgtest"
	"ruboard/internal/adapters/out/postgres/pricerepo"
	"ruboard/internal/adapters/out/postgres/productrepo"
	"ruboard/internal/core/application/usecases/queries"
	"ruboard/internal/core/domain/model/inventory"
	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/core/domain/model/packing"
	"ruboard/internal/core/domain/model/pricing"
	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

var (
	testNow   = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	testClock = kernel.FixedClock{At: testNow}
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *pgtest.Container
	db        *gorm.DB

	orders   *orderrepo.GormOrderRepository
	prices   *pricerepo.GormPriceRepository
	lots     *lotrepo.GormLotRepository
	products *productrepo.GormProductRepository
	packing  *packinglistrepo.GormPackingListRepository

	seq int64
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	container, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = container.DB

	suite.Require().NoError(postgresadapter.Migrate(suite.db))

	suite.orders = orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
	suite.prices = pricerepo.NewGormPriceRepository(suite.db)
	suite.lots = lotrepo.NewGormLotRepository(suite.db, noopTracker{})
	suite.products = productrepo.NewGormProductRepository(suite.db)
	suite.packing = packinglistrepo.NewGormPackingListRepository(suite.db)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, order_history, order_sequences, price_entries, inventory_lots, products, packing_lists",
	).Error)
	suite.seq = 0

	suite.addProduct("KR-001", "홍삼 캔디", "", 24, product.Dimensions{
		WidthCm:  decimal.NewFromInt(40),
		HeightCm: decimal.NewFromInt(30),
		DepthCm:  decimal.NewFromInt(20),
		WeightKg: decimal.RequireFromString("8.5"),
	})
	suite.addProduct("KR-002", "", "Ginseng tea", 10, product.Dimensions{
		WidthCm:  decimal.NewFromInt(50),
		HeightCm: decimal.NewFromInt(40),
		DepthCm:  decimal.NewFromInt(30),
		WeightKg: decimal.NewFromInt(12),
	})
}

func (suite *QueriesIntegrationTestSuite) addProduct(code, nameKo, nameEn string, pcs int, dims product.Dimensions) {
	p, err := product.NewProduct(code, nameKo, nameEn, pcs, dims)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.products.Add(context.Background(), p))
}

type testLine struct {
	code        string
	destination string
	qty         int64
	pcs         int
}

func (suite *QueriesIntegrationTestSuite) addOrder(
	buyer order.Buyer,
	orderDate time.Time,
	target order.Status,
	lines ...testLine,
) *order.Order {
	suite.seq++
	number, err := order.FormatNumber("RU", orderDate, suite.seq)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), number, buyer, orderDate, order.ActorBuyer, testNow)
	suite.Require().NoError(err)
	for _, line := range lines {
		item, itemErr := order.NewItem(kernel.NewUUID(), line.code, "name "+line.code, line.destination, line.pcs, line.qty,
			order.UnitPrice{Base: 1000, Commission: 100})
		suite.Require().NoError(itemErr)
		suite.Require().NoError(o.AddItem(item))
	}

	path := map[order.Status][]order.Status{
		order.Draft:     nil,
		order.Confirmed: {order.Confirmed},
		order.Cancelled: {order.Cancelled},
		order.Completed: {order.Confirmed, order.Packing, order.Shipped, order.Completed},
	}[target]
	for _, next := range path {
		if next == order.Packing {
			for _, item := range o.Items() {
				suite.Require().NoError(o.SetItemAvailability(item.ID(), order.Available, nil, "", order.ActorSupplier, testNow))
			}
		}
		suite.Require().NoError(o.Transition(next, order.ActorManager, "", testNow))
	}

	order.RecomputeOrderTotals(o)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_BuildsRollups() {
	ctx := context.Background()
	buyer := order.Buyer{ID: kernel.NewUUID(), Name: "Vostok Trading"}
	o := suite.addOrder(buyer, testNow, order.Confirmed,
		testLine{"KR-001", "Moscow", 48, 24},
		testLine{"KR-001", "Vladivostok", 30, 24},
		testLine{"KR-002", "", 10, 10},
	)

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetOrderQueryHandler(suite.orders, suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.Number(), view.Number)
	suite.Equal(order.Confirmed, view.Status)
	suite.Len(view.Items, 3)
	suite.Equal(int64(88), view.Totals.Quantity)
	suite.Equal(3, view.Availability.Pending)
	suite.False(view.ReadyForPacking)

	suite.Require().Len(view.ProductGroups, 2)
	suite.Equal("KR-001", view.ProductGroups[0].ProductCode)
	suite.Equal(int64(78), view.ProductGroups[0].TotalQty)
	suite.Equal([]string{"Moscow", "Vladivostok", "unspecified"}, view.Destinations)
	suite.Equal(int64(10), view.DestinationTotals["unspecified"].Qty)

	// KR-001: 2 + 2 cartons of 0.024 m3 and 8.5 kg; KR-002: 1 carton of 0.06 m3 and 12 kg.
	suite.Equal(int64(5), view.Packing.Cartons)
	suite.True(decimal.RequireFromString("0.156").Equal(view.Packing.CBM), view.Packing.CBM.String())
	suite.True(decimal.NewFromInt(46).Equal(view.Packing.WeightKg), view.Packing.WeightKg.String())
}

func (suite *QueriesIntegrationTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.orders, suite.db).Handle(context.Background(), query)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_FiltersAndPages() {
	ctx := context.Background()
	vostok := order.Buyer{ID: kernel.NewUUID(), Name: "Vostok Trading"}
	sibir := order.Buyer{ID: kernel.NewUUID(), Name: "Sibir Import"}

	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }
	first := suite.addOrder(vostok, day(1), order.Draft, testLine{"KR-001", "Moscow", 24, 24})
	second := suite.addOrder(vostok, day(5), order.Confirmed, testLine{"KR-001", "Moscow", 24, 24}, testLine{"KR-002", "", 10, 10})
	suite.addOrder(sibir, day(3), order.Cancelled, testLine{"KR-002", "Kazan", 10, 10})

	handler := queries.NewListOrdersQueryHandler(suite.db)

	all, err := queries.NewListOrdersQuery(queries.OrderFilter{})
	suite.Require().NoError(err)
	page, err := handler.Handle(ctx, all)
	suite.Require().NoError(err)
	suite.Equal(int64(3), page.Total)
	suite.Require().Len(page.Orders, 3)
	suite.Equal(second.ID(), page.Orders[0].ID)
	suite.Equal(2, page.Orders[0].ItemCount)
	suite.Equal(first.ID(), page.Orders[2].ID)

	from := day(2)
	filtered, err := queries.NewListOrdersQuery(queries.OrderFilter{
		BuyerID: &vostok.ID,
		From:    &from,
	})
	suite.Require().NoError(err)
	page, err = handler.Handle(ctx, filtered)
	suite.Require().NoError(err)
	suite.Require().Len(page.Orders, 1)
	suite.Equal(second.ID(), page.Orders[0].ID)
	suite.Equal(order.Confirmed, page.Orders[0].Status)
	suite.Equal(day(5), page.Orders[0].OrderDate)

	byStatus, err := queries.NewListOrdersQuery(queries.OrderFilter{
		Statuses: []order.Status{order.Draft, order.Cancelled},
		Limit:    1,
		Offset:   1,
	})
	suite.Require().NoError(err)
	page, err = handler.Handle(ctx, byStatus)
	suite.Require().NoError(err)
	suite.Equal(int64(2), page.Total)
	suite.Require().Len(page.Orders, 1)
	suite.Equal(first.ID(), page.Orders[0].ID)
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_EmptyReturnsEmptySlice() {
	query, err := queries.NewListOrdersQuery(queries.OrderFilter{})
	suite.Require().NoError(err)

	page, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(page.Orders)
	suite.Empty(page.Orders)
	suite.Zero(page.Total)
}

func (suite *QueriesIntegrationTestSuite) TestLeaderboards_CountEveryStatus() {
	ctx := context.Background()
	vostok := order.Buyer{ID: kernel.NewUUID(), Name: "Vostok Trading"}
	sibir := order.Buyer{ID: kernel.NewUUID(), Name: "Sibir Import"}

	suite.addOrder(vostok, testNow, order.Completed, testLine{"KR-001", "Moscow", 48, 24})
	suite.addOrder(vostok, testNow, order.Draft, testLine{"KR-002", "Moscow", 10, 10})
	suite.addOrder(sibir, testNow, order.Confirmed, testLine{"KR-002", "Kazan", 20, 10})
	suite.addOrder(sibir, testNow, order.Cancelled, testLine{"KR-002", "Kazan", 500, 10})

	buyersQuery, err := queries.NewBuyerLeaderboardQuery(0)
	suite.Require().NoError(err)
	buyers, err := queries.NewBuyerLeaderboardQueryHandler(suite.db).Handle(ctx, buyersQuery)
	suite.Require().NoError(err)
	suite.Require().Len(buyers, 2)
	suite.Equal(sibir.ID, buyers[0].BuyerID)
	suite.Equal(2, buyers[0].OrderCount)
	suite.Equal(0, buyers[0].CompletedCount)
	suite.Equal(int64(520*1100), buyers[0].TotalAmount)
	suite.Equal(vostok.ID, buyers[1].BuyerID)
	suite.Equal(2, buyers[1].OrderCount)
	suite.Equal(1, buyers[1].CompletedCount)
	suite.Equal(int64(58*1100), buyers[1].TotalAmount)

	productsQuery, err := queries.NewProductLeaderboardQuery(0)
	suite.Require().NoError(err)
	products, err := queries.NewProductLeaderboardQueryHandler(suite.db).Handle(ctx, productsQuery)
	suite.Require().NoError(err)
	suite.Require().Len(products, 2)
	suite.Equal("KR-002", products[0].ProductCode)
	suite.Equal(int64(530), products[0].TotalQty)
	suite.Equal(3, products[0].OrderCount)
	suite.Equal("KR-001", products[1].ProductCode)
	suite.Equal(int64(48), products[1].TotalQty)
}

func (suite *QueriesIntegrationTestSuite) TestStatusCounts_ZeroFilled() {
	buyer := order.Buyer{ID: kernel.NewUUID(), Name: "Vostok Trading"}
	suite.addOrder(buyer, testNow, order.Draft, testLine{"KR-001", "Moscow", 24, 24})
	suite.addOrder(buyer, testNow, order.Draft, testLine{"KR-001", "Moscow", 24, 24})
	suite.addOrder(buyer, testNow, order.Cancelled, testLine{"KR-001", "Moscow", 24, 24})

	counts, err := queries.NewGetOrderStatusCountsQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetOrderStatusCountsQuery())
	suite.Require().NoError(err)

	suite.Equal([]queries.StatusCount{
		{Status: order.Draft, Count: 2},
		{Status: order.Confirmed, Count: 0},
		{Status: order.Packing, Count: 0},
		{Status: order.Shipped, Count: 0},
		{Status: order.Completed, Count: 0},
		{Status: order.Cancelled, Count: 1},
	}, counts)
}

func (suite *QueriesIntegrationTestSuite) TestListActiveLots_OrderAndShelfLife() {
	ctx := context.Background()
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	add := func(number string, mfg *time.Time, qty int64) *inventory.Lot {
		lot, err := inventory.NewLot(kernel.NewUUID(), "KR-001", number, mfg, testNow, qty, "A-1")
		suite.Require().NoError(err)
		suite.Require().NoError(suite.lots.Add(ctx, lot))
		return lot
	}

	add("L-undated", nil, 10)
	add("L-new", date(2026, 1, 10), 10)
	old := add("L-old", date(2023, 8, 1), 10)
	add("L-empty", date(2024, 1, 1), 0)

	locked, err := suite.lots.GetForUpdate(ctx, old.LotNumber())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.AdjustQuantity(-4))
	suite.Require().NoError(suite.lots.Update(ctx, locked))

	query, err := queries.NewListActiveLotsQuery("KR-001")
	suite.Require().NoError(err)
	lots, err := queries.NewListActiveLotsQueryHandler(suite.db, testClock, 3, 12).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(lots, 3)
	suite.Equal("L-old", lots[0].LotNumber)
	suite.Equal(int64(6), lots[0].RemainingQty)
	suite.Require().NotNil(lots[0].RemainingShelfLifeMonths)
	suite.Equal(inventory.RemainingShelfLifeMonths(*date(2023, 8, 1), 3, testNow), *lots[0].RemainingShelfLifeMonths)
	suite.True(lots[0].NearExpiry)

	suite.Equal("L-new", lots[1].LotNumber)
	suite.False(lots[1].NearExpiry)

	suite.Equal("L-undated", lots[2].LotNumber)
	suite.Nil(lots[2].ManufacturedDate)
	suite.Nil(lots[2].RemainingShelfLifeMonths)
	suite.False(lots[2].NearExpiry)
}

func (suite *QueriesIntegrationTestSuite) TestCatalogQueries() {
	ctx := context.Background()
	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	for _, e := range []struct {
		at   time.Time
		base int64
	}{{march, 1000}, {april, 1200}} {
		entry, err := pricing.NewEntry("KR-001", e.base, 100, e.at, testNow)
		suite.Require().NoError(err)
		_, err = suite.prices.Append(ctx, entry)
		suite.Require().NoError(err)
	}

	priceHandler := queries.NewGetCurrentPriceQueryHandler(suite.prices, testClock)

	today, err := queries.NewGetCurrentPriceQuery("KR-001", nil)
	suite.Require().NoError(err)
	entry, err := priceHandler.Handle(ctx, today)
	suite.Require().NoError(err)
	suite.Equal(int64(1000), entry.Base())
	suite.Equal(int64(1100), entry.Final())

	atApril, err := queries.NewGetCurrentPriceQuery("KR-001", &april)
	suite.Require().NoError(err)
	entry, err = priceHandler.Handle(ctx, atApril)
	suite.Require().NoError(err)
	suite.Equal(int64(1200), entry.Base())

	missing, err := queries.NewGetCurrentPriceQuery("KR-002", nil)
	suite.Require().NoError(err)
	_, err = priceHandler.Handle(ctx, missing)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	productQuery, err := queries.NewGetProductQuery("KR-002")
	suite.Require().NoError(err)
	p, err := queries.NewGetProductQueryHandler(suite.products).Handle(ctx, productQuery)
	suite.Require().NoError(err)
	suite.Equal("Ginseng tea", p.DisplayName())
	suite.True(decimal.RequireFromString("0.06").Equal(p.CBM()))
}

func (suite *QueriesIntegrationTestSuite) addPackingList(o *order.Order, pallets int64, gross string, at time.Time) {
	totals := packing.Totals{
		Qty:           o.Totals().Quantity,
		Cartons:       o.Totals().Cartons,
		Pallets:       pallets,
		NetWeightKg:   decimal.NewFromInt(10),
		GrossWeightKg: decimal.RequireFromString(gross),
		CBM:           decimal.RequireFromString("0.5"),
		Amount:        o.Totals().Final,
	}
	l, err := packing.NewList(kernel.NewUUID(), o.ID(), o.Number(), o.Buyer().Name, []string{"Kazan", "Moscow"}, totals, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.packing.Add(context.Background(), l))
}

func (suite *QueriesIntegrationTestSuite) TestPackingLists_ListAndStats() {
	ctx := context.Background()
	buyer := order.Buyer{ID: kernel.NewUUID(), Name: "Vostok Trading"}
	older := suite.addOrder(buyer, testNow, order.Completed, testLine{"KR-001", "Moscow", 48, 24})
	newer := suite.addOrder(buyer, testNow, order.Completed, testLine{"KR-002", "Kazan", 20, 10})
	suite.addPackingList(older, 1, "30.5", testNow.Add(-time.Hour))
	suite.addPackingList(newer, 2, "50", testNow)

	query, err := queries.NewListPackingListsQuery(1, 0)
	suite.Require().NoError(err)
	page, err := queries.NewListPackingListsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(2), page.Total)
	suite.Require().Len(page.Lists, 1)
	suite.Equal(newer.ID(), page.Lists[0].OrderID)
	suite.Equal("PL-20260302-"+newer.Number(), page.Lists[0].Number)
	suite.Equal([]string{"Kazan", "Moscow"}, page.Lists[0].Destinations)
	suite.Equal(int64(2), page.Lists[0].Pallets)
	suite.True(decimal.NewFromInt(50).Equal(page.Lists[0].GrossWeightKg))

	stats, err := queries.NewGetPackingStatsQueryHandler(suite.db).Handle(ctx, queries.NewGetPackingStatsQuery())
	suite.Require().NoError(err)
	suite.Equal(int64(2), stats.Count)
	suite.Equal(int64(3), stats.Pallets)
	suite.True(decimal.RequireFromString("80.5").Equal(stats.GrossWeightKg), stats.GrossWeightKg.String())
	suite.True(decimal.NewFromInt(20).Equal(stats.NetWeightKg))
	suite.True(decimal.NewFromInt(1).Equal(stats.CBM))
	suite.Equal(older.Totals().Final+newer.Totals().Final, stats.Amount)
}

func (suite *QueriesIntegrationTestSuite) TestPackingLists_Empty() {
	ctx := context.Background()

	query, err := queries.NewListPackingListsQuery(0, 0)
	suite.Require().NoError(err)
	page, err := queries.NewListPackingListsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.NotNil(page.Lists)
	suite.Empty(page.Lists)
	suite.Equal(queries.DefaultListLimit, page.Limit)

	stats, err := queries.NewGetPackingStatsQueryHandler(suite.db).Handle(ctx, queries.NewGetPackingStatsQuery())
	suite.Require().NoError(err)
	suite.Zero(stats.Count)
	suite.True(stats.CBM.IsZero())
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
