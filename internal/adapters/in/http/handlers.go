package http

import (
	"context"

	"ruboard/internal/core/application/usecases/commands"
	"ruboard/internal/core/application/usecases/queries"
	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/pricing"
	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/core/domain/services"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
}

type AddOrderItemHandler interface {
	Handle(ctx context.Context, cmd commands.AddOrderItemCommand) (kernel.UUID, error)
}

type RemoveOrderItemHandler interface {
	Handle(ctx context.Context, cmd commands.RemoveOrderItemCommand) error
}

type TransitionOrderHandler interface {
	Handle(ctx context.Context, cmd commands.TransitionOrderCommand) error
}

type SetItemAvailabilityHandler interface {
	Handle(ctx context.Context, cmd commands.SetItemAvailabilityCommand) error
}

type SetOrderRemarkHandler interface {
	Handle(ctx context.Context, cmd commands.SetOrderRemarkCommand) error
}

type RegisterProductHandler interface {
	Handle(ctx context.Context, cmd commands.RegisterProductCommand) error
}

type UpdateProductHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateProductCommand) (commands.UpdateProductResult, error)
}

type DeactivateProductHandler interface {
	Handle(ctx context.Context, cmd commands.DeactivateProductCommand) error
}

type RecordPriceChangeHandler interface {
	Handle(ctx context.Context, cmd commands.RecordPriceChangeCommand) (commands.RecordPriceChangeResult, error)
}

type ReceiveLotHandler interface {
	Handle(ctx context.Context, cmd commands.ReceiveLotCommand) error
}

type AdjustLotQuantityHandler interface {
	Handle(ctx context.Context, cmd commands.AdjustLotQuantityCommand) (commands.AdjustLotQuantityResult, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

type ListOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.OrderPage, error)
}

type BuyerLeaderboardHandler interface {
	Handle(ctx context.Context, query queries.BuyerLeaderboardQuery) ([]services.BuyerStat, error)
}

type ProductLeaderboardHandler interface {
	Handle(ctx context.Context, query queries.ProductLeaderboardQuery) ([]services.ProductStat, error)
}

type OrderStatusCountsHandler interface {
	Handle(ctx context.Context, query queries.GetOrderStatusCountsQuery) ([]queries.StatusCount, error)
}

type GetProductHandler interface {
	Handle(ctx context.Context, query queries.GetProductQuery) (*product.Product, error)
}

type GetCurrentPriceHandler interface {
	Handle(ctx context.Context, query queries.GetCurrentPriceQuery) (pricing.Entry, error)
}

type ListActiveLotsHandler interface {
	Handle(ctx context.Context, query queries.ListActiveLotsQuery) ([]queries.ActiveLot, error)
}

type ListPackingListsHandler interface {
	Handle(ctx context.Context, query queries.ListPackingListsQuery) (queries.PackingListPage, error)
}

type PackingStatsHandler interface {
	Handle(ctx context.Context, query queries.GetPackingStatsQuery) (queries.PackingStats, error)
}

// Handlers bundles the use cases served over HTTP.
type Handlers struct {
	CreateOrder         CreateOrderHandler
	AddOrderItem        AddOrderItemHandler
	RemoveOrderItem     RemoveOrderItemHandler
	TransitionOrder     TransitionOrderHandler
	SetItemAvailability SetItemAvailabilityHandler
	SetOrderRemark      SetOrderRemarkHandler
	RegisterProduct     RegisterProductHandler
	UpdateProduct       UpdateProductHandler
	DeactivateProduct   DeactivateProductHandler
	RecordPriceChange   RecordPriceChangeHandler
	ReceiveLot          ReceiveLotHandler
	AdjustLotQuantity   AdjustLotQuantityHandler

	GetOrder           GetOrderHandler
	ListOrders         ListOrdersHandler
	BuyerLeaderboard   BuyerLeaderboardHandler
	ProductLeaderboard ProductLeaderboardHandler
	OrderStatusCounts  OrderStatusCountsHandler
	GetProduct         GetProductHandler
	GetCurrentPrice    GetCurrentPriceHandler
	ListActiveLots     ListActiveLotsHandler
	ListPackingLists   ListPackingListsHandler
	PackingStats       PackingStatsHandler
}
