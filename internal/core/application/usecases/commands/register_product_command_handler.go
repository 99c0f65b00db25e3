package commands

import (
	"context"
)

// RegisterProductCommandHandler adds an active product to the catalog. The
// product has no price until one is recorded, so orders cannot use it before
// that.
//
// Example:
//
//	handler := NewRegisterProductCommandHandler(uowFactory)
//	cmd, err := NewRegisterProductCommand("KR-003", "유자차", "Citron tea", 24, carton)
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); errors.Is(err, errs.ErrValueIsInvalid) {
//	    log.Println("Code already taken")
//	}
type RegisterProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRegisterProductCommandHandler creates a handler for new catalog products.
func NewRegisterProductCommandHandler(uowFactory CatalogUoWFactory) RegisterProductCommandHandler {
	return RegisterProductCommandHandler{uowFactory: uowFactory}
}

// Handle fails with a ValueIsInvalidError when the code is already taken.
func (h RegisterProductCommandHandler) Handle(ctx context.Context, cmd RegisterProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().Add(ctx, cmd.Product()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
