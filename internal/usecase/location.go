package usecase

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"rental-admin-api/internal/infra"
	"rental-admin-api/internal/pkg/errs"
	"rental-admin-api/internal/usecase/readmodel"
)

var ErrSlugExists = errors.New("location with this slug already exists")

type LocationStore interface {
	ListAll(ctx context.Context) ([]readmodel.Location, error)
	Update(ctx context.Context, id string, patch readmodel.LocationPatch) error
	Insert(ctx context.Context, loc readmodel.Location) error
	Delete(ctx context.Context, id string) error
}

type LocationUpsertItem struct {
	ID    string
	Patch readmodel.LocationPatch
}

type CreateLocationParams struct {
	Slug      string
	Label     string
	SortOrder int
	PriceEur  *float64
}

type LocationUseCase interface {
	List(ctx context.Context) ([]readmodel.Location, error)
	Upsert(ctx context.Context, items []LocationUpsertItem) error
	Create(ctx context.Context, params CreateLocationParams) (string, error)
	Delete(ctx context.Context, id string) error
}

type locationUseCaseImpl struct {
	locations LocationStore
}

func NewLocationUseCase(locations LocationStore) LocationUseCase {
	return &locationUseCaseImpl{locations: locations}
}

func (u *locationUseCaseImpl) List(ctx context.Context) ([]readmodel.Location, error) {
	list, err := u.locations.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].SortOrder < list[j].SortOrder
	})
	return list, nil
}

// Upsert merge-updates each addressed location; items without an id are
// skipped rather than failing the batch.
func (u *locationUseCaseImpl) Upsert(ctx context.Context, items []LocationUpsertItem) error {
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			continue
		}
		if err := u.locations.Update(ctx, id, item.Patch); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
	}
	return nil
}

func (u *locationUseCaseImpl) Create(ctx context.Context, params CreateLocationParams) (string, error) {
	slug := Slugify(params.Slug)
	if slug == "" {
		return "", errs.Mark(errors.New("slug is required"), ErrValidation)
	}

	loc := readmodel.Location{
		Slug:      slug,
		Label:     strings.TrimSpace(params.Label),
		SortOrder: params.SortOrder,
		PriceEur:  params.PriceEur,
	}
	loc.ID = slug

	if err := u.locations.Insert(ctx, loc); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", errs.Mark(err, ErrSlugExists)
		}
		return "", errs.Mark(err, ErrStoreFailure)
	}
	return slug, nil
}

func (u *locationUseCaseImpl) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.Mark(ErrMissingID, ErrValidation)
	}
	if err := u.locations.Delete(ctx, id); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]`)
	slugDashRuns     = regexp.MustCompile(`-+`)
)

// Slugify lower-cases, replaces anything outside [a-z0-9-] with dashes,
// collapses dash runs and trims leading/trailing dashes.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugDashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
