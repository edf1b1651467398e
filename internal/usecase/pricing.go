package usecase

import (
	"context"
	"fmt"
	"strings"

	"rental-admin-api/internal/pkg/errs"
	"rental-admin-api/internal/usecase/readmodel"
)

type PriceStore interface {
	ListAll(ctx context.Context) ([]readmodel.Price, error)
	Upsert(ctx context.Context, id string, price readmodel.Price) error
}

// PriceFilter fields combine with logical AND; zero values mean "no filter".
type PriceFilter struct {
	ScooterID string
	Season    string
	Days      *int
}

type PricingUseCase interface {
	List(ctx context.Context, filter PriceFilter) ([]readmodel.Price, error)
	Upsert(ctx context.Context, items []readmodel.Price) error
}

type pricingUseCaseImpl struct {
	prices PriceStore
}

func NewPricingUseCase(prices PriceStore) PricingUseCase {
	return &pricingUseCaseImpl{prices: prices}
}

func (u *pricingUseCaseImpl) List(ctx context.Context, filter PriceFilter) ([]readmodel.Price, error) {
	all, err := u.prices.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	out := make([]readmodel.Price, 0, len(all))
	for _, p := range all {
		if filter.ScooterID != "" && p.ScooterID != filter.ScooterID {
			continue
		}
		if filter.Season != "" && p.Season != filter.Season {
			continue
		}
		if filter.Days != nil && p.Days != *filter.Days {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Upsert writes each valid price cell under its composite key and silently
// skips malformed items, matching the tolerant batch contract of the admin UI.
func (u *pricingUseCaseImpl) Upsert(ctx context.Context, items []readmodel.Price) error {
	for _, item := range items {
		item.ScooterID = strings.TrimSpace(item.ScooterID)
		item.Season = strings.TrimSpace(item.Season)
		if item.ScooterID == "" || item.Season == "" || item.Days < 1 || item.Days > 7 {
			continue
		}
		if err := u.prices.Upsert(ctx, PriceDocID(item), item); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
	}
	return nil
}

func PriceDocID(p readmodel.Price) string {
	return fmt.Sprintf("%s_%s_%d", p.ScooterID, p.Season, p.Days)
}
