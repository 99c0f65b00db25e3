package cmd

import (
	httpin "ruboard/internal/adapters/in/http"
	"ruboard/internal/adapters/out/postgres"
	"ruboard/internal/adapters/out/postgres/orderrepo"
	"ruboard/internal/adapters/out/postgres/pricerepo"
	"ruboard/internal/adapters/out/postgres/productrepo"
	"ruboard/internal/adapters/out/redislock"
	"ruboard/internal/core/application/usecases/commands"
	"ruboard/internal/core/application/usecases/queries"
	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/packing"
	"ruboard/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	locker     ports.OrderLocker
	clock      kernel.Clock
}

// NewCompositionRoot wires the use cases. A nil rdb falls back to a
// process-local no-op order lock.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, rdb redis.UniversalClient) CompositionRoot {
	var locker ports.OrderLocker = ports.NoopOrderLocker{}
	if rdb != nil {
		locker = redislock.NewLocker(rdb, cfg.OrderLockTTL)
	}
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		locker:     locker,
		clock:      kernel.SystemClock{},
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) lotUoWFactory() commands.LotUoWFactory {
	return FuncLotUoWFactory(func() commands.LotUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.locker, c.clock).
		WithPackingPlan(packing.Plan{
			CartonsPerPallet: int64(c.cfg.CartonsPerPallet),
			PalletTareKg:     c.cfg.PalletTareKg,
		})
}

func (c *CompositionRoot) CreateSetItemAvailabilityCommandHandler() commands.SetItemAvailabilityCommandHandler {
	return commands.NewSetItemAvailabilityCommandHandler(c.orderUoWFactory(), c.locker, c.clock)
}

func (c *CompositionRoot) CreateSetOrderRemarkCommandHandler() commands.SetOrderRemarkCommandHandler {
	return commands.NewSetOrderRemarkCommandHandler(c.orderUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateRegisterProductCommandHandler() commands.RegisterProductCommandHandler {
	return commands.NewRegisterProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeactivateProductCommandHandler() commands.DeactivateProductCommandHandler {
	return commands.NewDeactivateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRecordPriceChangeCommandHandler() commands.RecordPriceChangeCommandHandler {
	return commands.NewRecordPriceChangeCommandHandler(c.catalogUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateReceiveLotCommandHandler() commands.ReceiveLotCommandHandler {
	return commands.NewReceiveLotCommandHandler(c.lotUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAdjustLotQuantityCommandHandler() commands.AdjustLotQuantityCommandHandler {
	return commands.NewAdjustLotQuantityCommandHandler(c.lotUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{}), c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateBuyerLeaderboardQueryHandler() queries.BuyerLeaderboardQueryHandler {
	return queries.NewBuyerLeaderboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateProductLeaderboardQueryHandler() queries.ProductLeaderboardQueryHandler {
	return queries.NewProductLeaderboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatusCountsQueryHandler() queries.GetOrderStatusCountsQueryHandler {
	return queries.NewGetOrderStatusCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(productrepo.NewGormProductRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetCurrentPriceQueryHandler() queries.GetCurrentPriceQueryHandler {
	return queries.NewGetCurrentPriceQueryHandler(pricerepo.NewGormPriceRepository(c.gormDB), c.clock)
}

func (c *CompositionRoot) CreateListActiveLotsQueryHandler() queries.ListActiveLotsQueryHandler {
	return queries.NewListActiveLotsQueryHandler(c.gormDB, c.clock, c.cfg.ShelfLifeYears, c.cfg.NearExpiryMonths)
}

func (c *CompositionRoot) CreateListPackingListsQueryHandler() queries.ListPackingListsQueryHandler {
	return queries.NewListPackingListsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackingStatsQueryHandler() queries.GetPackingStatsQueryHandler {
	return queries.NewGetPackingStatsQueryHandler(c.gormDB)
}

// HTTPHandlers bundles every use case for the REST adapter.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		AddOrderItem:        c.CreateAddOrderItemCommandHandler(),
		RemoveOrderItem:     c.CreateRemoveOrderItemCommandHandler(),
		TransitionOrder:     c.CreateTransitionOrderCommandHandler(),
		SetItemAvailability: c.CreateSetItemAvailabilityCommandHandler(),
		SetOrderRemark:      c.CreateSetOrderRemarkCommandHandler(),
		RegisterProduct:     c.CreateRegisterProductCommandHandler(),
		UpdateProduct:       c.CreateUpdateProductCommandHandler(),
		DeactivateProduct:   c.CreateDeactivateProductCommandHandler(),
		RecordPriceChange:   c.CreateRecordPriceChangeCommandHandler(),
		ReceiveLot:          c.CreateReceiveLotCommandHandler(),
		AdjustLotQuantity:   c.CreateAdjustLotQuantityCommandHandler(),

		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		BuyerLeaderboard:   c.CreateBuyerLeaderboardQueryHandler(),
		ProductLeaderboard: c.CreateProductLeaderboardQueryHandler(),
		OrderStatusCounts:  c.CreateGetOrderStatusCountsQueryHandler(),
		GetProduct:         c.CreateGetProductQueryHandler(),
		GetCurrentPrice:    c.CreateGetCurrentPriceQueryHandler(),
		ListActiveLots:     c.CreateListActiveLotsQueryHandler(),
		ListPackingLists:   c.CreateListPackingListsQueryHandler(),
		PackingStats:       c.CreateGetPackingStatsQueryHandler(),
	}
}

// NewHTTPServer builds the REST server over HTTPHandlers.
func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	return httpin.NewServer(c.HTTPHandlers(), c.cfg.RegionCode, c.clock)
}

// noopTracker satisfies the repositories' aggregate tracking outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncLotUoWFactory func() commands.LotUoW

func (f FuncLotUoWFactory) Create() commands.LotUoW {
	return f()
}
