package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"rental-admin-api/internal/pkg/errs"
	"rental-admin-api/internal/usecase/readmodel"
)

var (
	ErrMissingID  = errors.New("id is required")
	ErrEmptyPatch = errors.New("no fields to update")
)

type BoatStore interface {
	ListAll(ctx context.Context) ([]readmodel.Boat, error)
	Seed(ctx context.Context, boats []readmodel.Boat) error
	Update(ctx context.Context, id string, patch readmodel.BoatPatch) error
}

type ScooterStore interface {
	ListAll(ctx context.Context) ([]readmodel.Scooter, error)
	Get(ctx context.Context, id string) (readmodel.Scooter, error)
	Update(ctx context.Context, id string, patch readmodel.ScooterPatch) error
}

type CatalogUseCase interface {
	ListBoats(ctx context.Context) ([]readmodel.Boat, error)
	UpdateBoat(ctx context.Context, id string, patch readmodel.BoatPatch) error
	ListScooters(ctx context.Context) ([]readmodel.Scooter, error)
	UpdateScooter(ctx context.Context, id string, patch readmodel.ScooterPatch) error
}

type catalogUseCaseImpl struct {
	boats    BoatStore
	scooters ScooterStore
}

func NewCatalogUseCase(boats BoatStore, scooters ScooterStore) CatalogUseCase {
	return &catalogUseCaseImpl{
		boats:    boats,
		scooters: scooters,
	}
}

// ListBoats seeds the default fleet on first use so a fresh deployment serves
// a non-empty catalog.
func (u *catalogUseCaseImpl) ListBoats(ctx context.Context) ([]readmodel.Boat, error) {
	boats, err := u.boats.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if len(boats) == 0 {
		if err := u.boats.Seed(ctx, DefaultBoats()); err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
		boats, err = u.boats.ListAll(ctx)
		if err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
	}
	sort.SliceStable(boats, func(i, j int) bool {
		return boats[i].SortOrder < boats[j].SortOrder
	})
	return boats, nil
}

func (u *catalogUseCaseImpl) UpdateBoat(ctx context.Context, id string, patch readmodel.BoatPatch) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.Mark(ErrMissingID, ErrValidation)
	}
	if patch.IsEmpty() {
		return nil
	}
	if err := u.boats.Update(ctx, id, patch); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

// ListScooters overlays stored documents on the default fleet so every known
// scooter type appears even before its first write.
func (u *catalogUseCaseImpl) ListScooters(ctx context.Context) ([]readmodel.Scooter, error) {
	stored, err := u.scooters.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	byID := make(map[string]readmodel.Scooter)
	order := make([]string, 0, len(defaultScooterIDs)+len(stored))
	for _, id := range defaultScooterIDs {
		byID[id] = readmodel.Scooter{ID: id, Label: defaultScooterLabels[id], Quantity: 0}
		order = append(order, id)
	}
	for _, s := range stored {
		if _, known := byID[s.ID]; !known {
			order = append(order, s.ID)
		}
		if s.Label == "" {
			s.Label = defaultScooterLabels[s.ID]
			if s.Label == "" {
				s.Label = s.ID
			}
		}
		byID[s.ID] = s
	}

	list := make([]readmodel.Scooter, 0, len(order))
	for _, id := range order {
		list = append(list, byID[id])
	}
	return list, nil
}

func (u *catalogUseCaseImpl) UpdateScooter(ctx context.Context, id string, patch readmodel.ScooterPatch) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.Mark(ErrMissingID, ErrValidation)
	}
	if patch.IsEmpty() {
		return nil
	}
	if err := u.scooters.Update(ctx, id, patch); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

var defaultScooterIDs = []string{"sh-125", "liberty-125", "sim-200", "voge-rally-300"}

var defaultScooterLabels = map[string]string{
	"sh-125":         "SH 125",
	"liberty-125":    "LIBERTY 125",
	"sim-200":        "SIM 200",
	"voge-rally-300": "VOGE RALLY 300",
}

var defaultBoatIncludes = []string{
	"Meet at the Port",
	"Coolbox with Ice",
	"Bluetooth Speaker Onboard",
	"Sun Canopy",
	"Sunbathing Area",
	"GPS Tracking",
	"60 HP Engine + Backup Engine",
	"All Required Safety Equipment",
}

func DefaultBoats() []readmodel.Boat {
	includes := func() []string {
		out := make([]string, len(defaultBoatIncludes))
		copy(out, defaultBoatIncludes)
		return out
	}
	return []readmodel.Boat{
		{
			ID:               "boat1",
			Name:             "Boat 1",
			ImageURL:         "/images/self-drive-boat.png",
			Price4h:          180,
			Price7h:          250,
			MaxPax:           6,
			ModalName:        "Daphne",
			Includes:         includes(),
			LengthMeters:     "5",
			FuelExcludedText: "Fuel not included",
			SortOrder:        1,
		},
		{
			ID:       "boat2",
			Name:     "Boat 2",
			ImageURL: "/images/fleet-experience.png",
			// boat2 is the only seeded boat with a gallery.
			ImageURLs: []string{
				"/images/fleet-experience.png",
				"/images/fleet-experience.png",
				"/images/fleet-experience.png",
				"/images/fleet-experience.png",
				"/images/fleet-experience.png",
				"/images/fleet-experience.png",
			},
			Price4h:          200,
			Price7h:          270,
			MaxPax:           7,
			ModalName:        "Elena",
			Includes:         includes(),
			LengthMeters:     "5.4",
			FuelExcludedText: "Fuel not included",
			SortOrder:        2,
		},
		{
			ID:               "boat3",
			Name:             "Boat 3",
			ImageURL:         "/images/skipper-drive.png",
			Price4h:          200,
			Price7h:          270,
			MaxPax:           7,
			ModalName:        "Valeria",
			Includes:         includes(),
			LengthMeters:     "5.5",
			FuelExcludedText: "Fuel not included",
			SortOrder:        3,
		},
	}
}
