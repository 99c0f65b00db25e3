// Package orderrepo persists the order aggregate across three tables: orders,
// order_items and order_history.
package orderrepo

import (
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. Status is stored by name so reports can filter on it directly.
type OrderDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number                string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	BuyerID               uuid.UUID  `gorm:"type:uuid;not null;index"`
	BuyerName             string     `gorm:"type:varchar(255);not null"`
	OrderDate             time.Time  `gorm:"type:date;not null;index"`
	RequestedDeliveryDate *time.Time `gorm:"type:date"`
	Status                string     `gorm:"type:varchar(16);not null;index"`
	TotalQuantity         int64      `gorm:"not null"`
	TotalCartons          int64      `gorm:"not null"`
	TotalBase             int64      `gorm:"not null"`
	TotalCommission       int64      `gorm:"not null"`
	TotalFinal            int64      `gorm:"not null"`
	BuyerRemark           string     `gorm:"type:text"`
	ManagerRemark         string     `gorm:"type:text"`
	SupplierRemark        string     `gorm:"type:text"`
	ConfirmedAt           *time.Time
	PackedAt              *time.Time
	ShippedAt             *time.Time
	CompletedAt           *time.Time
	CancelledAt           *time.Time
	CancellationReason    string `gorm:"type:text"`
	Version               int64  `gorm:"not null;default:0"`

	Items   []OrderItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []OrderHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order_items row. Unit and subtotal amounts are stored
// denormalized for reporting queries.
type OrderItemDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;not null;index"`
	LineNumber         int       `gorm:"not null"`
	ProductCode        string    `gorm:"type:varchar(64);not null;index"`
	ProductName        string    `gorm:"type:varchar(255);not null"`
	Destination        string    `gorm:"type:varchar(255)"`
	PcsPerCarton       int       `gorm:"not null"`
	RequestedQty       int64     `gorm:"not null"`
	ConfirmedQty       *int64
	UnitBase           int64  `gorm:"not null"`
	UnitCommission     int64  `gorm:"not null"`
	UnitFinal          int64  `gorm:"not null"`
	SubtotalBase       int64  `gorm:"not null"`
	SubtotalCommission int64  `gorm:"not null"`
	SubtotalFinal      int64  `gorm:"not null"`
	CartonCount        int64  `gorm:"not null"`
	Availability       string `gorm:"type:varchar(16);not null"`
	AvailabilityNote   string `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderHistoryDTO is one order_history row. Seq is the position in the log.
type OrderHistoryDTO struct {
	ID      int64     `gorm:"primaryKey;autoIncrement"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_history_seq"`
	Seq     int       `gorm:"not null;uniqueIndex:idx_order_history_seq"`
	At      time.Time `gorm:"not null"`
	Action  string    `gorm:"type:varchar(255);not null"`
	Actor   string    `gorm:"type:varchar(16);not null"`
	Note    string    `gorm:"type:text"`
}

func (OrderHistoryDTO) TableName() string {
	return "order_history"
}

// OrderSequenceDTO holds the last issued number per order number prefix.
type OrderSequenceDTO struct {
	Prefix string `gorm:"type:varchar(32);primaryKey"`
	Value  int64  `gorm:"not null"`
}

func (OrderSequenceDTO) TableName() string {
	return "order_sequences"
}

func fromDomain(o *order.Order) OrderDTO {
	totals := o.Totals()
	remarks := o.Remarks()

	dto := OrderDTO{
		ID:                    o.ID().Bytes(),
		Number:                o.Number(),
		BuyerID:               o.Buyer().ID.Bytes(),
		BuyerName:             o.Buyer().Name,
		OrderDate:             o.OrderDate(),
		RequestedDeliveryDate: o.RequestedDeliveryDate(),
		Status:                o.Status().String(),
		TotalQuantity:         totals.Quantity,
		TotalCartons:          totals.Cartons,
		TotalBase:             totals.Base,
		TotalCommission:       totals.Commission,
		TotalFinal:            totals.Final,
		BuyerRemark:           remarks.Buyer,
		ManagerRemark:         remarks.Manager,
		SupplierRemark:        remarks.Supplier,
		ConfirmedAt:           o.ConfirmedAt(),
		PackedAt:              o.PackedAt(),
		ShippedAt:             o.ShippedAt(),
		CompletedAt:           o.CompletedAt(),
		CancelledAt:           o.CancelledAt(),
		CancellationReason:    o.CancellationReason(),
		Version:               o.Version(),
	}

	for _, item := range o.Items() {
		dto.Items = append(dto.Items, itemFromDomain(dto.ID, item))
	}
	for seq, h := range o.History() {
		dto.History = append(dto.History, OrderHistoryDTO{
			OrderID: dto.ID,
			Seq:     seq,
			At:      h.At,
			Action:  h.Action,
			Actor:   h.Actor.String(),
			Note:    h.Note,
		})
	}
	return dto
}

func itemFromDomain(orderID uuid.UUID, item *order.Item) OrderItemDTO {
	price := item.Price()
	subtotal := item.Subtotal()
	return OrderItemDTO{
		ID:                 item.ID().Bytes(),
		OrderID:            orderID,
		LineNumber:         item.LineNumber(),
		ProductCode:        item.ProductCode(),
		ProductName:        item.ProductName(),
		Destination:        item.Destination(),
		PcsPerCarton:       item.PcsPerCarton(),
		RequestedQty:       item.RequestedQty(),
		ConfirmedQty:       item.ConfirmedQty(),
		UnitBase:           price.Base,
		UnitCommission:     price.Commission,
		UnitFinal:          price.Final(),
		SubtotalBase:       subtotal.Base,
		SubtotalCommission: subtotal.Commission,
		SubtotalFinal:      subtotal.Final,
		CartonCount:        item.CartonCount(),
		Availability:       item.Availability().String(),
		AvailabilityNote:   item.AvailabilityNote(),
	}
}

// columns lists the orders columns rewritten by Update.
func (dto OrderDTO) columns() map[string]any {
	return map[string]any{
		"buyer_name":              dto.BuyerName,
		"order_date":              dto.OrderDate,
		"requested_delivery_date": dto.RequestedDeliveryDate,
		"status":                  dto.Status,
		"total_quantity":          dto.TotalQuantity,
		"total_cartons":           dto.TotalCartons,
		"total_base":              dto.TotalBase,
		"total_commission":        dto.TotalCommission,
		"total_final":             dto.TotalFinal,
		"buyer_remark":            dto.BuyerRemark,
		"manager_remark":          dto.ManagerRemark,
		"supplier_remark":         dto.SupplierRemark,
		"confirmed_at":            dto.ConfirmedAt,
		"packed_at":               dto.PackedAt,
		"shipped_at":              dto.ShippedAt,
		"completed_at":            dto.CompletedAt,
		"cancelled_at":            dto.CancelledAt,
		"cancellation_reason":     dto.CancellationReason,
		"version":                 dto.Version + 1,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, h := range dto.History {
		actor, actorErr := order.ParseActor(h.Actor)
		if actorErr != nil {
			return nil, actorErr
		}
		history = append(history, order.HistoryEntry{At: h.At.UTC(), Action: h.Action, Actor: actor, Note: h.Note})
	}

	return order.RestoreOrder(order.State{
		ID:                    id,
		Number:                dto.Number,
		Buyer:                 order.Buyer{ID: buyerID, Name: dto.BuyerName},
		OrderDate:             dto.OrderDate,
		RequestedDeliveryDate: dto.RequestedDeliveryDate,
		Status:                status,
		Items:                 items,
		Totals: order.Totals{
			Quantity: dto.TotalQuantity,
			Cartons:  dto.TotalCartons,
			Amounts:  order.Amounts{Base: dto.TotalBase, Commission: dto.TotalCommission, Final: dto.TotalFinal},
		},
		Remarks:            order.Remarks{Buyer: dto.BuyerRemark, Manager: dto.ManagerRemark, Supplier: dto.SupplierRemark},
		History:            history,
		ConfirmedAt:        dto.ConfirmedAt,
		PackedAt:           dto.PackedAt,
		ShippedAt:          dto.ShippedAt,
		CompletedAt:        dto.CompletedAt,
		CancelledAt:        dto.CancelledAt,
		CancellationReason: dto.CancellationReason,
		Version:            dto.Version,
	})
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	availability, err := order.ParseAvailability(dto.Availability)
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(order.ItemState{
		ID:               id,
		LineNumber:       dto.LineNumber,
		ProductCode:      dto.ProductCode,
		ProductName:      dto.ProductName,
		Destination:      dto.Destination,
		PcsPerCarton:     dto.PcsPerCarton,
		RequestedQty:     dto.RequestedQty,
		ConfirmedQty:     dto.ConfirmedQty,
		Price:            order.UnitPrice{Base: dto.UnitBase, Commission: dto.UnitCommission},
		Availability:     availability,
		AvailabilityNote: dto.AvailabilityNote,
	})
}
