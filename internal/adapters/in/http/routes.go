package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	Health(ctx echo.Context) error

	CreateOrder(ctx echo.Context) error
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	GetOrder(ctx echo.Context, orderID openapi_types.UUID) error
	ExportDestinationMatrix(ctx echo.Context, orderID openapi_types.UUID) error
	AddOrderItem(ctx echo.Context, orderID openapi_types.UUID) error
	RemoveOrderItem(ctx echo.Context, orderID, itemID openapi_types.UUID) error
	TransitionOrder(ctx echo.Context, orderID openapi_types.UUID) error
	SetItemAvailability(ctx echo.Context, orderID, itemID openapi_types.UUID) error
	SetOrderRemark(ctx echo.Context, orderID openapi_types.UUID) error

	GetBuyerLeaderboard(ctx echo.Context, params LeaderboardParams) error
	GetProductLeaderboard(ctx echo.Context, params LeaderboardParams) error
	GetOrderStatusCounts(ctx echo.Context) error

	RegisterProduct(ctx echo.Context) error
	GetProduct(ctx echo.Context, productCode string) error
	UpdateProduct(ctx echo.Context, productCode string) error
	DeactivateProduct(ctx echo.Context, productCode string) error
	GetCurrentPrice(ctx echo.Context, productCode string, params GetCurrentPriceParams) error
	RecordPriceChange(ctx echo.Context, productCode string) error
	ListActiveLots(ctx echo.Context, productCode string) error

	ReceiveLot(ctx echo.Context) error
	AdjustLotQuantity(ctx echo.Context, lotNumber string) error

	ListPackingLists(ctx echo.Context, params ListPackingListsParams) error
	GetPackingStats(ctx echo.Context) error
}

type ListOrdersParams struct {
	Status  *[]string           `form:"status,omitempty" json:"status,omitempty"`
	BuyerID *openapi_types.UUID `form:"buyerId,omitempty" json:"buyerId,omitempty"`
	From    *openapi_types.Date `form:"from,omitempty" json:"from,omitempty"`
	To      *openapi_types.Date `form:"to,omitempty" json:"to,omitempty"`
	Limit   *int                `form:"limit,omitempty" json:"limit,omitempty"`
	Offset  *int                `form:"offset,omitempty" json:"offset,omitempty"`
}

type LeaderboardParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

func (p LeaderboardParams) limit() int {
	if p.Limit == nil {
		return 0
	}
	return *p.Limit
}

type ListPackingListsParams struct {
	Limit  *int `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int `form:"offset,omitempty" json:"offset,omitempty"`
}

type GetCurrentPriceParams struct {
	At *openapi_types.Date `form:"at,omitempty" json:"at,omitempty"`
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func badParameter(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

func pathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, badParameter(name, err)
	}
	return id, nil
}

func pathString(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return value, badParameter(name, err)
	}
	return value, nil
}

func (w *ServerInterfaceWrapper) Health(ctx echo.Context) error {
	return w.Handler.Health(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	query := ctx.QueryParams()

	if err := runtime.BindQueryParameter("form", true, false, "status", query, &params.Status); err != nil {
		return badParameter("status", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "buyerId", query, &params.BuyerID); err != nil {
		return badParameter("buyerId", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "from", query, &params.From); err != nil {
		return badParameter("from", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "to", query, &params.To); err != nil {
		return badParameter("to", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		return badParameter("limit", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", query, &params.Offset); err != nil {
		return badParameter("offset", err)
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ExportDestinationMatrix(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ExportDestinationMatrix(ctx, orderID)
}

func (w *ServerInterfaceWrapper) AddOrderItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AddOrderItem(ctx, orderID)
}

func (w *ServerInterfaceWrapper) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.RemoveOrderItem(ctx, orderID, itemID)
}

func (w *ServerInterfaceWrapper) TransitionOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.TransitionOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) SetItemAvailability(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return err
	}
	return w.Handler.SetItemAvailability(ctx, orderID, itemID)
}

func (w *ServerInterfaceWrapper) SetOrderRemark(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.SetOrderRemark(ctx, orderID)
}

func (w *ServerInterfaceWrapper) leaderboardParams(ctx echo.Context) (LeaderboardParams, error) {
	var params LeaderboardParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return params, badParameter("limit", err)
	}
	return params, nil
}

func (w *ServerInterfaceWrapper) GetBuyerLeaderboard(ctx echo.Context) error {
	params, err := w.leaderboardParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetBuyerLeaderboard(ctx, params)
}

func (w *ServerInterfaceWrapper) GetProductLeaderboard(ctx echo.Context) error {
	params, err := w.leaderboardParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetProductLeaderboard(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrderStatusCounts(ctx echo.Context) error {
	return w.Handler.GetOrderStatusCounts(ctx)
}

func (w *ServerInterfaceWrapper) RegisterProduct(ctx echo.Context) error {
	return w.Handler.RegisterProduct(ctx)
}

func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	code, err := pathString(ctx, "productCode")
	if err != nil {
		return err
	}
	return w.Handler.GetProduct(ctx, code)
}

func (w *ServerInterfaceWrapper) UpdateProduct(ctx echo.Context) error {
	code, err := pathString(ctx, "productCode")
	if err != nil {
		return err
	}
	return w.Handler.UpdateProduct(ctx, code)
}

func (w *ServerInterfaceWrapper) DeactivateProduct(ctx echo.Context) error {
	code, err := pathString(ctx, "productCode")
	if err != nil {
		return err
	}
	return w.Handler.DeactivateProduct(ctx, code)
}

func (w *ServerInterfaceWrapper) GetCurrentPrice(ctx echo.Context) error {
	code, err := pathString(ctx, "productCode")
	if err != nil {
		return err
	}
	var params GetCurrentPriceParams
	if err = runtime.BindQueryParameter("form", true, false, "at", ctx.QueryParams(), &params.At); err != nil {
		return badParameter("at", err)
	}
	return w.Handler.GetCurrentPrice(ctx, code, params)
}

func (w *ServerInterfaceWrapper) RecordPriceChange(ctx echo.Context) error {
	code, err := pathString(ctx, "productCode")
	if err != nil {
		return err
	}
	return w.Handler.RecordPriceChange(ctx, code)
}

func (w *ServerInterfaceWrapper) ListActiveLots(ctx echo.Context) error {
	code, err := pathString(ctx, "productCode")
	if err != nil {
		return err
	}
	return w.Handler.ListActiveLots(ctx, code)
}

func (w *ServerInterfaceWrapper) ReceiveLot(ctx echo.Context) error {
	return w.Handler.ReceiveLot(ctx)
}

func (w *ServerInterfaceWrapper) AdjustLotQuantity(ctx echo.Context) error {
	lotNumber, err := pathString(ctx, "lotNumber")
	if err != nil {
		return err
	}
	return w.Handler.AdjustLotQuantity(ctx, lotNumber)
}

func (w *ServerInterfaceWrapper) ListPackingLists(ctx echo.Context) error {
	var params ListPackingListsParams
	query := ctx.QueryParams()

	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		return badParameter("limit", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", query, &params.Offset); err != nil {
		return badParameter("offset", err)
	}

	return w.Handler.ListPackingLists(ctx, params)
}

func (w *ServerInterfaceWrapper) GetPackingStats(ctx echo.Context) error {
	return w.Handler.GetPackingStats(ctx)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation under its documented path.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET("/health", w.Health)

	router.POST("/api/v1/orders", w.CreateOrder)
	router.GET("/api/v1/orders", w.ListOrders)
	router.GET("/api/v1/orders/:orderId", w.GetOrder)
	router.GET("/api/v1/orders/:orderId/destination-matrix", w.ExportDestinationMatrix)
	router.POST("/api/v1/orders/:orderId/items", w.AddOrderItem)
	router.DELETE("/api/v1/orders/:orderId/items/:itemId", w.RemoveOrderItem)
	router.POST("/api/v1/orders/:orderId/transitions", w.TransitionOrder)
	router.PUT("/api/v1/orders/:orderId/items/:itemId/availability", w.SetItemAvailability)
	router.PUT("/api/v1/orders/:orderId/remarks", w.SetOrderRemark)

	router.GET("/api/v1/dashboard/buyers", w.GetBuyerLeaderboard)
	router.GET("/api/v1/dashboard/products", w.GetProductLeaderboard)
	router.GET("/api/v1/dashboard/status-counts", w.GetOrderStatusCounts)

	router.POST("/api/v1/products", w.RegisterProduct)
	router.GET("/api/v1/products/:productCode", w.GetProduct)
	router.PATCH("/api/v1/products/:productCode", w.UpdateProduct)
	router.DELETE("/api/v1/products/:productCode", w.DeactivateProduct)
	router.GET("/api/v1/products/:productCode/price", w.GetCurrentPrice)
	router.POST("/api/v1/products/:productCode/prices", w.RecordPriceChange)
	router.GET("/api/v1/products/:productCode/lots", w.ListActiveLots)

	router.POST("/api/v1/lots", w.ReceiveLot)
	router.POST("/api/v1/lots/:lotNumber/adjustments", w.AdjustLotQuantity)

	router.GET("/api/v1/packing-lists", w.ListPackingLists)
	router.GET("/api/v1/packing-lists/stats", w.GetPackingStats)
}
