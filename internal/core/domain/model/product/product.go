// Package product is the catalog entry for a sellable item and the carton
// packing data used to plan shipments.
package product

import (
	"errors"
	"fmt"
	"strings"

	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

var cubicCmPerCubicMeter = decimal.NewFromInt(1_000_000)

// Dimensions of one outer carton. Lengths are in centimetres, weight in kilograms.
type Dimensions struct {
	WidthCm  decimal.Decimal
	HeightCm decimal.Decimal
	DepthCm  decimal.Decimal
	WeightKg decimal.Decimal
}

func (d Dimensions) Validate() error {
	var errList []error
	for name, v := range map[string]decimal.Decimal{
		"carton width":  d.WidthCm,
		"carton height": d.HeightCm,
		"carton depth":  d.DepthCm,
		"carton weight": d.WeightKg,
	} {
		if v.IsNegative() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(name+" is invalid", fmt.Errorf("%s is negative", v)))
		}
	}
	return errors.Join(errList...)
}

// CBM is the carton volume in cubic metres.
func (d Dimensions) CBM() decimal.Decimal {
	return d.WidthCm.Mul(d.HeightCm).Mul(d.DepthCm).Div(cubicCmPerCubicMeter)
}

type Product struct {
	code         string
	nameKo       string
	nameEn       string
	pcsPerCarton int
	carton       Dimensions
	status       Status

	guard guard.ConstructorGuard
}

// NewProduct creates an active catalog entry. At least one name is required.
func NewProduct(code, nameKo, nameEn string, pcsPerCarton int, carton Dimensions) (*Product, error) {
	p := &Product{
		code:         strings.TrimSpace(code),
		nameKo:       strings.TrimSpace(nameKo),
		nameEn:       strings.TrimSpace(nameEn),
		pcsPerCarton: pcsPerCarton,
		carton:       carton,
		status:       StatusActive,
		guard:        guard.NewConstructorGuard(),
	}

	var errList []error
	if p.code == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product code"))
	}
	if p.nameKo == "" && p.nameEn == "" {
		errList = append(errList, errs.NewValueIsRequiredError("product name"))
	}
	if pcsPerCarton < 1 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("pcs per carton is invalid", fmt.Errorf("%d is not greater than 0", pcsPerCarton)))
	}
	errList = append(errList, carton.Validate())

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreProduct rebuilds a stored product.
func RestoreProduct(code, nameKo, nameEn string, pcsPerCarton int, carton Dimensions, status Status) (*Product, error) {
	p, err := NewProduct(code, nameKo, nameEn, pcsPerCarton, carton)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	p.status = status
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) Code() string {
	return p.code
}

func (p *Product) NameKo() string {
	return p.nameKo
}

func (p *Product) NameEn() string {
	return p.nameEn
}

// DisplayName prefers the Korean name, which is what the supplier catalog uses.
func (p *Product) DisplayName() string {
	if p.nameKo != "" {
		return p.nameKo
	}
	return p.nameEn
}

func (p *Product) PcsPerCarton() int {
	return p.pcsPerCarton
}

func (p *Product) Carton() Dimensions {
	return p.carton
}

func (p *Product) CBM() decimal.Decimal {
	return p.carton.CBM()
}

func (p *Product) Status() Status {
	return p.status
}

func (p *Product) IsActive() bool {
	return p.status == StatusActive
}

// Deactivate withdraws the product from new orders. Existing order lines
// keep their snapshot.
func (p *Product) Deactivate() {
	p.status = StatusInactive
}

// Changes is a partial edit of a product. Nil fields are left as they are.
type Changes struct {
	NameKo       *string
	NameEn       *string
	PcsPerCarton *int
	Carton       *Dimensions
	Status       *Status
}

// IsEmpty is true when no field is set.
func (c Changes) IsEmpty() bool {
	return c.NameKo == nil && c.NameEn == nil && c.PcsPerCarton == nil && c.Carton == nil && c.Status == nil
}

// Apply edits the product. The edited product must still satisfy NewProduct;
// otherwise the product is left unchanged. CBM follows the new carton.
func (p *Product) Apply(c Changes) error {
	nameKo, nameEn, pcs, carton, status := p.nameKo, p.nameEn, p.pcsPerCarton, p.carton, p.status
	if c.NameKo != nil {
		nameKo = *c.NameKo
	}
	if c.NameEn != nil {
		nameEn = *c.NameEn
	}
	if c.PcsPerCarton != nil {
		pcs = *c.PcsPerCarton
	}
	if c.Carton != nil {
		carton = *c.Carton
	}
	if c.Status != nil {
		status = *c.Status
	}

	edited, err := RestoreProduct(p.code, nameKo, nameEn, pcs, carton, status)
	if err != nil {
		return err
	}

	p.nameKo = edited.nameKo
	p.nameEn = edited.nameEn
	p.pcsPerCarton = edited.pcsPerCarton
	p.carton = edited.carton
	p.status = edited.status
	return nil
}
