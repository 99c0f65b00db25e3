package commands

import (
	"errors"

	"ruboard/internal/core/domain/model/product"
	"ruboard/internal/pkg/guard"
)

var ErrRegisterProductCommandIsNotConstructed = errors.New(
	"RegisterProductCommand must be created via NewRegisterProductCommand constructor",
)

// RegisterProductCommand adds a product to the catalog. The product is
// validated up front so handlers never see an unbuildable product.
type RegisterProductCommand struct { //nolint:recvcheck //using for validation
	product *product.Product

	guard guard.ConstructorGuard
}

func NewRegisterProductCommand(
	code, nameKo, nameEn string,
	pcsPerCarton int,
	carton product.Dimensions,
) (RegisterProductCommand, error) {
	p, err := product.NewProduct(code, nameKo, nameEn, pcsPerCarton, carton)
	if err != nil {
		return RegisterProductCommand{}, err
	}
	return RegisterProductCommand{product: p, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterProductCommand) Validate() error {
	return c.guard.Validate(ErrRegisterProductCommandIsNotConstructed)
}

func (c RegisterProductCommand) Product() *product.Product {
	return c.product
}
