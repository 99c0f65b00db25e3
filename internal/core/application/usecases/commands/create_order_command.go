package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ruboard/internal/core/domain/model/kernel"
	"ruboard/internal/core/domain/model/order"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested product line.
type OrderLine struct {
	ProductCode string
	Destination string
	Qty         int64
}

func (l OrderLine) validate() error {
	var errList []error
	if strings.TrimSpace(l.ProductCode) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product code"))
	}
	if l.Qty <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("requested quantity is invalid",
			fmt.Errorf("%d is not greater than 0", l.Qty)))
	}
	return errors.Join(errList...)
}

// CreateOrderCommand opens a DRAFT order for a buyer. The order number is
// allocated from the region sequence of the order month.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "RU", buyer, orderDate, []OrderLine{
//	    {ProductCode: "KR-001", Destination: "Moscow", Qty: 240},
//	})
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID               kernel.UUID
	region                string
	buyer                 order.Buyer
	orderDate             time.Time
	requestedDeliveryDate *time.Time
	lines                 []OrderLine
	buyerRemark           string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	region string,
	buyer order.Buyer,
	orderDate time.Time,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRegion(region),
		cmd.setBuyer(buyer),
		cmd.setOrderDate(orderDate),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// WithRequestedDeliveryDate returns a copy carrying the buyer's delivery date.
func (c CreateOrderCommand) WithRequestedDeliveryDate(date *time.Time) CreateOrderCommand {
	c.requestedDeliveryDate = date
	return c
}

// WithBuyerRemark returns a copy carrying the buyer's remark.
func (c CreateOrderCommand) WithBuyerRemark(remark string) CreateOrderCommand {
	c.buyerRemark = strings.TrimSpace(remark)
	return c
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Region() string {
	return c.region
}

func (c CreateOrderCommand) Buyer() order.Buyer {
	return c.buyer
}

func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

func (c CreateOrderCommand) RequestedDeliveryDate() *time.Time {
	return c.requestedDeliveryDate
}

func (c CreateOrderCommand) Lines() []OrderLine {
	out := make([]OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c CreateOrderCommand) BuyerRemark() string {
	return c.buyerRemark
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRegion(region string) error {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		return errs.NewValueIsRequiredError("region")
	}
	c.region = region
	return nil
}

func (c *CreateOrderCommand) setBuyer(buyer order.Buyer) error {
	if err := buyer.Validate(); err != nil {
		return err
	}
	c.buyer = buyer
	return nil
}

func (c *CreateOrderCommand) setOrderDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	c.orderDate = date
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	var errList []error
	for _, line := range lines {
		if err := line.validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
