package queries

import (
	"errors"

	"ruboard/internal/core/domain/services"
	"ruboard/internal/pkg/errs"
	"ruboard/internal/pkg/guard"
)

const maxLeaderboardSize = 100

var (
	ErrBuyerLeaderboardQueryIsNotConstructed = errors.New(
		"BuyerLeaderboardQuery must be created via NewBuyerLeaderboardQuery constructor",
	)
	ErrProductLeaderboardQueryIsNotConstructed = errors.New(
		"ProductLeaderboardQuery must be created via NewProductLeaderboardQuery constructor",
	)
)

type BuyerLeaderboardQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewBuyerLeaderboardQuery ranks the top limit buyers; zero means
// services.DefaultBuyerLeaderboardSize.
func NewBuyerLeaderboardQuery(limit int) (BuyerLeaderboardQuery, error) {
	limit, err := leaderboardLimit(limit, services.DefaultBuyerLeaderboardSize)
	if err != nil {
		return BuyerLeaderboardQuery{}, err
	}
	return BuyerLeaderboardQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q BuyerLeaderboardQuery) Validate() error {
	return q.guard.Validate(ErrBuyerLeaderboardQueryIsNotConstructed)
}

func (q BuyerLeaderboardQuery) Limit() int {
	return q.limit
}

type ProductLeaderboardQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewProductLeaderboardQuery ranks the top limit products; zero means
// services.DefaultProductLeaderboardSize.
func NewProductLeaderboardQuery(limit int) (ProductLeaderboardQuery, error) {
	limit, err := leaderboardLimit(limit, services.DefaultProductLeaderboardSize)
	if err != nil {
		return ProductLeaderboardQuery{}, err
	}
	return ProductLeaderboardQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ProductLeaderboardQuery) Validate() error {
	return q.guard.Validate(ErrProductLeaderboardQueryIsNotConstructed)
}

func (q ProductLeaderboardQuery) Limit() int {
	return q.limit
}

func leaderboardLimit(limit, fallback int) (int, error) {
	if limit == 0 {
		return fallback, nil
	}
	if limit < 1 || limit > maxLeaderboardSize {
		return 0, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxLeaderboardSize)
	}
	return limit, nil
}
