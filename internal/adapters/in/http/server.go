package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ruboard/internal/core/application/usecases/commands"
	"ruboard/internal/core/application/usecases/queries"
	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Server implements ServerInterface on top of the application use cases.
type Server struct {
	h      Handlers
	region string
	clock  kernel.Clock
}

// NewServer creates a server. region prefixes new order numbers.
func NewServer(h Handlers, region string, clock kernel.Clock) *Server {
	return &Server{h: h, region: region, clock: clock}
}

var _ ServerInterface = (*Server)(nil)

func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	buyerID, err := kernel.UUIDFromBytes(body.BuyerID[:])
	if err != nil {
		return err
	}

	orderDate := kernel.StartOfDay(s.clock.Now())
	if body.OrderDate != nil {
		orderDate = body.OrderDate.Time
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		lines = append(lines, commands.OrderLine{
			ProductCode: item.ProductCode,
			Destination: item.Destination,
			Qty:         item.Qty,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		s.region,
		order.Buyer{ID: buyerID, Name: body.BuyerName},
		orderDate,
		lines,
	)
	if err != nil {
		return err
	}
	cmd = cmd.WithRequestedDeliveryDate(fromDatePtr(body.RequestedDeliveryDate)).WithBuyerRemark(body.BuyerRemark)

	result, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: result.OrderID.Bytes(), Number: result.Number})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	filter := queries.OrderFilter{
		From: fromDatePtr(params.From),
		To:   fromDatePtr(params.To),
	}
	if params.Status != nil {
		for _, name := range *params.Status {
			for _, part := range strings.Split(name, ",") {
				status, err := order.ParseStatus(part)
				if err != nil {
					return err
				}
				filter.Statuses = append(filter.Statuses, status)
			}
		}
	}
	if params.BuyerID != nil {
		buyerID, err := kernel.UUIDFromBytes(params.BuyerID[:])
		if err != nil {
			return err
		}
		filter.BuyerID = &buyerID
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}
	if params.Offset != nil {
		filter.Offset = *params.Offset
	}

	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return err
	}

	page, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orderPageResponse(page))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	view, err := s.orderView(ctx, orderID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orderResponse(view))
}

// ExportDestinationMatrix handles GET /api/v1/orders/{orderId}/destination-matrix.
func (s *Server) ExportDestinationMatrix(ctx echo.Context, orderID openapi_types.UUID) error {
	view, err := s.orderView(ctx, orderID)
	if err != nil {
		return err
	}

	f, err := DestinationMatrix(view)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, xlsxContentType)
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", view.Number+".xlsx"))
	res.WriteHeader(http.StatusOK)
	return f.Write(res)
}

func (s *Server) orderView(ctx echo.Context, orderID openapi_types.UUID) (queries.OrderView, error) {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return queries.OrderView{}, err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return queries.OrderView{}, err
	}
	return s.h.GetOrder.Handle(ctx.Request().Context(), query)
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderItem(ctx echo.Context, orderID openapi_types.UUID) error {
	var body NewOrderLine
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return err
	}
	cmd, err := commands.NewAddOrderItemCommand(id, commands.OrderLine{
		ProductCode: body.ProductCode,
		Destination: body.Destination,
		Qty:         body.Qty,
	})
	if err != nil {
		return err
	}

	itemID, err := s.h.AddOrderItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ItemCreated{ID: itemID.Bytes()})
}

// RemoveOrderItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveOrderItem(ctx echo.Context, orderID, itemID openapi_types.UUID) error {
	oid, iid, err := orderAndItemIDs(orderID, itemID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRemoveOrderItemCommand(oid, iid)
	if err != nil {
		return err
	}
	if err = s.h.RemoveOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transitions.
func (s *Server) TransitionOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	var body Transition
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return err
	}
	target, err := order.ParseStatus(body.Target)
	if err != nil {
		return err
	}
	actor, err := order.ParseActor(body.Actor)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionOrderCommand(id, target, actor, body.Note)
	if err != nil {
		return err
	}
	if err = s.h.TransitionOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetItemAvailability handles PUT /api/v1/orders/{orderId}/items/{itemId}/availability.
func (s *Server) SetItemAvailability(ctx echo.Context, orderID, itemID openapi_types.UUID) error {
	var body AvailabilityUpdate
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	oid, iid, err := orderAndItemIDs(orderID, itemID)
	if err != nil {
		return err
	}
	availability, err := order.ParseAvailability(body.Availability)
	if err != nil {
		return err
	}
	actor, err := order.ParseActor(body.Actor)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetItemAvailabilityCommand(oid, iid, availability, body.ConfirmedQty, body.Note, actor)
	if err != nil {
		return err
	}
	if err = s.h.SetItemAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SetOrderRemark handles PUT /api/v1/orders/{orderId}/remarks.
func (s *Server) SetOrderRemark(ctx echo.Context, orderID openapi_types.UUID) error {
	var body RemarkUpdate
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return err
	}
	actor, err := order.ParseActor(body.Actor)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSetOrderRemarkCommand(id, actor, body.Text)
	if err != nil {
		return err
	}
	if err = s.h.SetOrderRemark.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func orderAndItemIDs(orderID, itemID openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	oid, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	iid, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return oid, iid, nil
}

// GetBuyerLeaderboard handles GET /api/v1/dashboard/buyers.
func (s *Server) GetBuyerLeaderboard(ctx echo.Context, params LeaderboardParams) error {
	query, err := queries.NewBuyerLeaderboardQuery(params.limit())
	if err != nil {
		return err
	}
	stats, err := s.h.BuyerLeaderboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, buyerStatsResponse(stats))
}

// GetProductLeaderboard handles GET /api/v1/dashboard/products.
func (s *Server) GetProductLeaderboard(ctx echo.Context, params LeaderboardParams) error {
	query, err := queries.NewProductLeaderboardQuery(params.limit())
	if err != nil {
		return err
	}
	stats, err := s.h.ProductLeaderboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, productStatsResponse(stats))
}

// GetOrderStatusCounts handles GET /api/v1/dashboard/status-counts.
func (s *Server) GetOrderStatusCounts(ctx echo.Context) error {
	counts, err := s.h.OrderStatusCounts.Handle(ctx.Request().Context(), queries.NewGetOrderStatusCountsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, statusCountsResponse(counts))
}

// RegisterProduct handles POST /api/v1/products.
func (s *Server) RegisterProduct(ctx echo.Context) error {
	var body NewProduct
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	carton, err := parseCarton(body.Carton)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRegisterProductCommand(body.Code, body.NameKo, body.NameEn, body.PcsPerCarton, carton)
	if err != nil {
		return err
	}
	if err = s.h.RegisterProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, productResponse(cmd.Product()))
}

func parseCarton(c Carton) (product.Dimensions, error) {
	var (
		d       product.Dimensions
		errList []error
	)
	for _, f := range []struct {
		name  string
		value string
		dest  *decimal.Decimal
	}{
		{"carton width", c.WidthCm, &d.WidthCm},
		{"carton height", c.HeightCm, &d.HeightCm},
		{"carton depth", c.DepthCm, &d.DepthCm},
		{"carton weight", c.WeightKg, &d.WeightKg},
	} {
		v, err := decimal.NewFromString(f.value)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(f.name+" is invalid", err))
			continue
		}
		*f.dest = v
	}
	return d, errors.Join(errList...)
}

// GetProduct handles GET /api/v1/products/{productCode}.
func (s *Server) GetProduct(ctx echo.Context, productCode string) error {
	query, err := queries.NewGetProductQuery(productCode)
	if err != nil {
		return err
	}
	p, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, productResponse(p))
}

// UpdateProduct handles PATCH /api/v1/products/{productCode}.
func (s *Server) UpdateProduct(ctx echo.Context, productCode string) error {
	var body ProductUpdate
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	changes := product.Changes{
		NameKo:       body.NameKo,
		NameEn:       body.NameEn,
		PcsPerCarton: body.PcsPerCarton,
	}
	if body.Carton != nil {
		carton, err := parseCarton(*body.Carton)
		if err != nil {
			return err
		}
		changes.Carton = &carton
	}
	if body.Status != nil {
		status, err := product.ParseStatus(*body.Status)
		if err != nil {
			return err
		}
		changes.Status = &status
	}

	cmd, err := commands.NewUpdateProductCommand(productCode, changes, commands.PriceChange{
		Base:       body.Base,
		Commission: body.Commission,
	})
	if err != nil {
		return err
	}
	result, err := s.h.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	resp := ProductUpdated{Product: productResponse(result.Product)}
	if result.Price != nil {
		price := priceResponse(*result.Price)
		resp.Price = &price
	}
	return ctx.JSON(http.StatusOK, resp)
}

// DeactivateProduct handles DELETE /api/v1/products/{productCode}. The
// product stays in the catalog as inactive.
func (s *Server) DeactivateProduct(ctx echo.Context, productCode string) error {
	cmd, err := commands.NewDeactivateProductCommand(productCode)
	if err != nil {
		return err
	}
	if err = s.h.DeactivateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetCurrentPrice handles GET /api/v1/products/{productCode}/price.
func (s *Server) GetCurrentPrice(ctx echo.Context, productCode string, params GetCurrentPriceParams) error {
	query, err := queries.NewGetCurrentPriceQuery(productCode, fromDatePtr(params.At))
	if err != nil {
		return err
	}
	entry, err := s.h.GetCurrentPrice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, priceResponse(entry))
}

// RecordPriceChange handles POST /api/v1/products/{productCode}/prices.
// It answers 201 when an entry was appended and 200 for an unchanged price.
func (s *Server) RecordPriceChange(ctx echo.Context, productCode string) error {
	var body NewPrice
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	effective := kernel.StartOfDay(s.clock.Now())
	if body.EffectiveDate != nil {
		effective = body.EffectiveDate.Time
	}

	cmd, err := commands.NewRecordPriceChangeCommand(productCode, body.Base, body.Commission, effective)
	if err != nil {
		return err
	}
	result, err := s.h.RecordPriceChange.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result.Appended {
		status = http.StatusCreated
	}
	return ctx.JSON(status, PriceRecorded{Appended: result.Appended, Price: priceResponse(result.Entry)})
}

// ListActiveLots handles GET /api/v1/products/{productCode}/lots.
func (s *Server) ListActiveLots(ctx echo.Context, productCode string) error {
	query, err := queries.NewListActiveLotsQuery(productCode)
	if err != nil {
		return err
	}
	lots, err := s.h.ListActiveLots.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, lotsResponse(lots))
}

// ReceiveLot handles POST /api/v1/lots.
func (s *Server) ReceiveLot(ctx echo.Context) error {
	var body NewLot
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	var received time.Time
	if body.ReceivedDate != nil {
		received = body.ReceivedDate.Time
	}

	lotID := kernel.NewUUID()
	cmd, err := commands.NewReceiveLotCommand(
		lotID,
		body.ProductCode,
		body.LotNumber,
		fromDatePtr(body.ManufacturedDate),
		received,
		body.Qty,
		body.Location,
	)
	if err != nil {
		return err
	}
	if err = s.h.ReceiveLot.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, LotCreated{ID: lotID.Bytes()})
}

// AdjustLotQuantity handles POST /api/v1/lots/{lotNumber}/adjustments.
func (s *Server) AdjustLotQuantity(ctx echo.Context, lotNumber string) error {
	var body LotAdjustment
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAdjustLotQuantityCommand(lotNumber, body.Delta)
	if err != nil {
		return err
	}
	result, err := s.h.AdjustLotQuantity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, LotAdjusted{
		LotNumber:    result.LotNumber,
		RemainingQty: result.RemainingQty,
		Status:       result.Status.String(),
	})
}

// ListPackingLists handles GET /api/v1/packing-lists.
func (s *Server) ListPackingLists(ctx echo.Context, params ListPackingListsParams) error {
	var limit, offset int
	if params.Limit != nil {
		limit = *params.Limit
	}
	if params.Offset != nil {
		offset = *params.Offset
	}

	query, err := queries.NewListPackingListsQuery(limit, offset)
	if err != nil {
		return err
	}
	page, err := s.h.ListPackingLists.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, packingListPageResponse(page))
}

// GetPackingStats handles GET /api/v1/packing-lists/stats.
func (s *Server) GetPackingStats(ctx echo.Context) error {
	stats, err := s.h.PackingStats.Handle(ctx.Request().Context(), queries.NewGetPackingStatsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, packingStatsResponse(stats))
}
