package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewOrderLine struct {
	ProductCode string `json:"productCode" validate:"required"`
	Destination string `json:"destination"`
	Qty         int64  `json:"qty" validate:"gt=0"`
}

type NewOrder struct {
	BuyerID               openapi_types.UUID  `json:"buyerId" validate:"required"`
	BuyerName             string              `json:"buyerName" validate:"required"`
	OrderDate             *openapi_types.Date `json:"orderDate,omitempty"`
	RequestedDeliveryDate *openapi_types.Date `json:"requestedDeliveryDate,omitempty"`
	BuyerRemark           string              `json:"buyerRemark,omitempty"`
	Items                 []NewOrderLine      `json:"items" validate:"required,min=1,dive"`
}

type OrderCreated struct {
	ID     openapi_types.UUID `json:"id"`
	Number string             `json:"number"`
}

type ItemCreated struct {
	ID openapi_types.UUID `json:"id"`
}

type Transition struct {
	Target string `json:"target" validate:"required"`
	Actor  string `json:"actor" validate:"required"`
	Note   string `json:"note,omitempty"`
}

type AvailabilityUpdate struct {
	Availability string `json:"availability" validate:"required"`
	ConfirmedQty *int64 `json:"confirmedQty,omitempty"`
	Note         string `json:"note,omitempty"`
	Actor        string `json:"actor" validate:"required"`
}

type RemarkUpdate struct {
	Actor string `json:"actor" validate:"required"`
	Text  string `json:"text"`
}

type Amounts struct {
	Base       int64 `json:"base"`
	Commission int64 `json:"commission"`
	Final      int64 `json:"final"`
}

type UnitPrice struct {
	Base       int64 `json:"base"`
	Commission int64 `json:"commission"`
	Final      int64 `json:"final"`
}

type OrderItem struct {
	ID               openapi_types.UUID `json:"id"`
	LineNumber       int                `json:"lineNumber"`
	ProductCode      string             `json:"productCode"`
	ProductName      string             `json:"productName"`
	Destination      string             `json:"destination"`
	PcsPerCarton     int                `json:"pcsPerCarton"`
	RequestedQty     int64              `json:"requestedQty"`
	ConfirmedQty     *int64             `json:"confirmedQty"`
	EffectiveQty     int64              `json:"effectiveQty"`
	UnitPrice        UnitPrice          `json:"unitPrice"`
	Subtotal         Amounts            `json:"subtotal"`
	CartonCount      int64              `json:"cartonCount"`
	Availability     string             `json:"availability"`
	AvailabilityNote string             `json:"availabilityNote,omitempty"`
}

type HistoryEntry struct {
	At     time.Time `json:"at"`
	Action string    `json:"action"`
	Actor  string    `json:"actor"`
	Note   string    `json:"note,omitempty"`
}

type DestinationCell struct {
	Qty      int64 `json:"qty"`
	Subtotal int64 `json:"subtotal"`
}

type ProductGroup struct {
	ProductCode   string                     `json:"productCode"`
	ProductName   string                     `json:"productName"`
	ByDestination map[string]DestinationCell `json:"byDestination"`
	TotalQty      int64                      `json:"totalQty"`
	TotalAmount   int64                      `json:"totalAmount"`
}

type DestinationTotal struct {
	Qty    int64 `json:"qty"`
	Amount int64 `json:"amount"`
}

type AvailabilitySummary struct {
	Pending     int `json:"pending"`
	Available   int `json:"available"`
	Partial     int `json:"partial"`
	Unavailable int `json:"unavailable"`
}

type Packing struct {
	Cartons  int64  `json:"cartons"`
	CBM      string `json:"cbm"`
	WeightKg string `json:"weightKg"`
}

type Remarks struct {
	Buyer    string `json:"buyer,omitempty"`
	Manager  string `json:"manager,omitempty"`
	Supplier string `json:"supplier,omitempty"`
}

type OrderTotals struct {
	Quantity int64 `json:"quantity"`
	Cartons  int64 `json:"cartons"`
	Amounts
}

type Order struct {
	ID                    openapi_types.UUID          `json:"id"`
	Number                string                      `json:"number"`
	BuyerID               openapi_types.UUID          `json:"buyerId"`
	BuyerName             string                      `json:"buyerName"`
	OrderDate             openapi_types.Date          `json:"orderDate"`
	RequestedDeliveryDate *openapi_types.Date         `json:"requestedDeliveryDate,omitempty"`
	Status                string                      `json:"status"`
	Totals                OrderTotals                 `json:"totals"`
	Remarks               Remarks                     `json:"remarks"`
	ConfirmedAt           *time.Time                  `json:"confirmedAt,omitempty"`
	PackedAt              *time.Time                  `json:"packedAt,omitempty"`
	ShippedAt             *time.Time                  `json:"shippedAt,omitempty"`
	CompletedAt           *time.Time                  `json:"completedAt,omitempty"`
	CancelledAt           *time.Time                  `json:"cancelledAt,omitempty"`
	CancellationReason    string                      `json:"cancellationReason,omitempty"`
	Version               int64                       `json:"version"`
	Items                 []OrderItem                 `json:"items"`
	History               []HistoryEntry              `json:"history"`
	ProductGroups         []ProductGroup              `json:"productGroups"`
	DestinationTotals     map[string]DestinationTotal `json:"destinationTotals"`
	Destinations          []string                    `json:"destinations"`
	Availability          AvailabilitySummary         `json:"availability"`
	ReadyForPacking       bool                        `json:"readyForPacking"`
	Packing               Packing                     `json:"packing"`
}

type OrderSummary struct {
	ID            openapi_types.UUID `json:"id"`
	Number        string             `json:"number"`
	BuyerID       openapi_types.UUID `json:"buyerId"`
	BuyerName     string             `json:"buyerName"`
	OrderDate     openapi_types.Date `json:"orderDate"`
	Status        string             `json:"status"`
	TotalQuantity int64              `json:"totalQuantity"`
	TotalCartons  int64              `json:"totalCartons"`
	TotalFinal    int64              `json:"totalFinal"`
	ItemCount     int                `json:"itemCount"`
}

type OrderPage struct {
	Orders []OrderSummary `json:"orders"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type BuyerStat struct {
	BuyerID        openapi_types.UUID `json:"buyerId"`
	BuyerName      string             `json:"buyerName"`
	OrderCount     int                `json:"orderCount"`
	CompletedCount int                `json:"completedCount"`
	TotalAmount    int64              `json:"totalAmount"`
}

type ProductStat struct {
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	TotalQty    int64  `json:"totalQty"`
	TotalAmount int64  `json:"totalAmount"`
	OrderCount  int    `json:"orderCount"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// Carton dimensions travel as decimal strings.
type Carton struct {
	WidthCm  string `json:"widthCm" validate:"required,numeric"`
	HeightCm string `json:"heightCm" validate:"required,numeric"`
	DepthCm  string `json:"depthCm" validate:"required,numeric"`
	WeightKg string `json:"weightKg" validate:"required,numeric"`
}

type NewProduct struct {
	Code         string `json:"code" validate:"required"`
	NameKo       string `json:"nameKo" validate:"required_without=NameEn"`
	NameEn       string `json:"nameEn" validate:"required_without=NameKo"`
	PcsPerCarton int    `json:"pcsPerCarton" validate:"gte=1"`
	Carton       Carton `json:"carton"`
}

type Product struct {
	Code         string `json:"code"`
	NameKo       string `json:"nameKo,omitempty"`
	NameEn       string `json:"nameEn,omitempty"`
	DisplayName  string `json:"displayName"`
	PcsPerCarton int    `json:"pcsPerCarton"`
	Carton       Carton `json:"carton"`
	CBM          string `json:"cbm"`
	Status       string `json:"status"`
}

// ProductUpdate edits only the fields present. Base and Commission record a
// price effective today when they change it.
type ProductUpdate struct {
	NameKo       *string `json:"nameKo,omitempty"`
	NameEn       *string `json:"nameEn,omitempty"`
	PcsPerCarton *int    `json:"pcsPerCarton,omitempty" validate:"omitempty,gte=1"`
	Carton       *Carton `json:"carton,omitempty"`
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Base         *int64  `json:"base,omitempty" validate:"omitempty,gte=0"`
	Commission   *int64  `json:"commission,omitempty" validate:"omitempty,gte=0"`
}

type ProductUpdated struct {
	Product Product `json:"product"`
	Price   *Price  `json:"price,omitempty"`
}

type NewPrice struct {
	Base          int64               `json:"base" validate:"gte=0"`
	Commission    int64               `json:"commission" validate:"gte=0"`
	EffectiveDate *openapi_types.Date `json:"effectiveDate,omitempty"`
}

type Price struct {
	ID            int64              `json:"id"`
	ProductCode   string             `json:"productCode"`
	Base          int64              `json:"base"`
	Commission    int64              `json:"commission"`
	Final         int64              `json:"final"`
	EffectiveDate openapi_types.Date `json:"effectiveDate"`
	RecordedAt    time.Time          `json:"recordedAt"`
}

type PriceRecorded struct {
	Appended bool  `json:"appended"`
	Price    Price `json:"price"`
}

type NewLot struct {
	ProductCode      string              `json:"productCode" validate:"required"`
	LotNumber        string              `json:"lotNumber" validate:"required"`
	ManufacturedDate *openapi_types.Date `json:"manufacturedDate,omitempty"`
	ReceivedDate     *openapi_types.Date `json:"receivedDate,omitempty"`
	Qty              int64               `json:"qty" validate:"gt=0"`
	Location         string              `json:"location,omitempty"`
}

type LotCreated struct {
	ID openapi_types.UUID `json:"id"`
}

type LotAdjustment struct {
	Delta int64 `json:"delta" validate:"ne=0"`
}

type LotAdjusted struct {
	LotNumber    string `json:"lotNumber"`
	RemainingQty int64  `json:"remainingQty"`
	Status       string `json:"status"`
}

type Lot struct {
	ID                       openapi_types.UUID  `json:"id"`
	LotNumber                string              `json:"lotNumber"`
	ManufacturedDate         *openapi_types.Date `json:"manufacturedDate,omitempty"`
	ReceivedDate             openapi_types.Date  `json:"receivedDate"`
	InitialQty               int64               `json:"initialQty"`
	RemainingQty             int64               `json:"remainingQty"`
	Location                 string              `json:"location,omitempty"`
	RemainingShelfLifeMonths *int                `json:"remainingShelfLifeMonths,omitempty"`
	NearExpiry               bool                `json:"nearExpiry"`
}

type PackingList struct {
	ID            openapi_types.UUID `json:"id"`
	Number        string             `json:"number"`
	OrderID       openapi_types.UUID `json:"orderId"`
	OrderNumber   string             `json:"orderNumber"`
	Consignee     string             `json:"consignee"`
	Destinations  []string           `json:"destinations"`
	TotalQty      int64              `json:"totalQty"`
	TotalCartons  int64              `json:"totalCartons"`
	TotalPallets  int64              `json:"totalPallets"`
	NetWeightKg   string             `json:"netWeightKg"`
	GrossWeightKg string             `json:"grossWeightKg"`
	CBM           string             `json:"cbm"`
	TotalAmount   int64              `json:"totalAmount"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type PackingListPage struct {
	PackingLists []PackingList `json:"packingLists"`
	Total        int64         `json:"total"`
	Limit        int           `json:"limit"`
	Offset       int           `json:"offset"`
}

type PackingStats struct {
	Count         int64  `json:"count"`
	TotalPallets  int64  `json:"totalPallets"`
	NetWeightKg   string `json:"netWeightKg"`
	GrossWeightKg string `json:"grossWeightKg"`
	CBM           string `json:"cbm"`
	TotalAmount   int64  `json:"totalAmount"`
}
