package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"rental-admin-api/internal/domain/booking"
	"rental-admin-api/internal/infra"
	"rental-admin-api/internal/pkg/clock"
	"rental-admin-api/internal/pkg/errs"
)

// Shared sentinels for the per-request error taxonomy: validation maps to
// 400, conflicts to 409, store failures to a logged 500.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("booking conflicts with an existing booking")
	ErrStoreFailure = errors.New("store operation failed")
)

type BookingStore interface {
	ListAll(ctx context.Context) ([]booking.Booking, error)
	ListForBoatDate(ctx context.Context, boatID, rentalDate string) ([]booking.Booking, error)
	ListForScooter(ctx context.Context, scooterID string) ([]booking.Booking, error)
	Create(ctx context.Context, b booking.Booking) (string, error)
}

type CreateBookingParams struct {
	CustomerName string
	Email        string
	Phone        string
	LocationID   string
	TotalEur     float64
	Status       string
	Notes        string

	// Boat mode (single-day, exclusive).
	BoatID     string
	RentalDate string
	Duration   string

	// Scooter mode (ranged, capacity-bounded).
	ScooterID        string
	PickupDate       string
	ReturnDate       string
	PickupLocationID string
	ReturnLocationID string
}

type BookingUseCase interface {
	List(ctx context.Context) ([]booking.Booking, error)
	Create(ctx context.Context, params CreateBookingParams) (string, error)
}

type bookingUseCaseImpl struct {
	bookings BookingStore
	scooters ScooterStore
	clock    clock.Clock
}

func NewBookingUseCase(bookings BookingStore, scooters ScooterStore, clock clock.Clock) BookingUseCase {
	return &bookingUseCaseImpl{
		bookings: bookings,
		scooters: scooters,
		clock:    clock,
	}
}

func (u *bookingUseCaseImpl) List(ctx context.Context) ([]booking.Booking, error) {
	list, err := u.bookings.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt > list[j].CreatedAt
	})
	return list, nil
}

// Create admits or rejects the candidate, then persists it. The availability
// read and the write are two store calls with no transaction between them, so
// two racing requests can both be admitted; this mirrors the accepted
// weak-consistency contract of the availability checker.
func (u *bookingUseCaseImpl) Create(ctx context.Context, params CreateBookingParams) (string, error) {
	switch {
	case strings.TrimSpace(params.BoatID) != "":
		if err := u.checkBoatAvailability(ctx, params); err != nil {
			return "", err
		}
	case strings.TrimSpace(params.ScooterID) != "":
		if err := u.checkScooterAvailability(ctx, params); err != nil {
			return "", err
		}
	default:
		return "", errs.Mark(booking.ErrMissingResourceID, ErrValidation)
	}

	id, err := u.bookings.Create(ctx, u.buildRecord(params))
	if err != nil {
		return "", errs.Mark(err, ErrStoreFailure)
	}
	return id, nil
}

func (u *bookingUseCaseImpl) checkBoatAvailability(ctx context.Context, params CreateBookingParams) error {
	candidate := booking.DayCandidate{
		ResourceID: strings.TrimSpace(params.BoatID),
		Date:       strings.TrimSpace(params.RentalDate),
	}
	if err := candidate.Validate(); err != nil {
		return errs.Mark(err, ErrValidation)
	}

	existing, err := u.bookings.ListForBoatDate(ctx, candidate.ResourceID, candidate.Date)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if err := booking.CheckDay(candidate, existing); err != nil {
		return errs.Mark(err, ErrConflict)
	}
	return nil
}

func (u *bookingUseCaseImpl) checkScooterAvailability(ctx context.Context, params CreateBookingParams) error {
	r, err := booking.NewDateRange(params.PickupDate, params.ReturnDate)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}
	candidate := booking.RangeCandidate{
		ResourceID: strings.TrimSpace(params.ScooterID),
		Range:      r,
	}
	if err := candidate.Validate(); err != nil {
		return errs.Mark(err, ErrValidation)
	}

	// An unknown scooter id has fleet size zero and is never bookable.
	capacity := 0
	scooter, err := u.scooters.Get(ctx, candidate.ResourceID)
	switch {
	case err == nil:
		capacity = scooter.Quantity
	case infra.IsKind(err, infra.KindNotFound):
	default:
		return errs.Mark(err, ErrStoreFailure)
	}

	existing, err := u.bookings.ListForScooter(ctx, candidate.ResourceID)
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if err := booking.CheckRange(candidate, capacity, existing); err != nil {
		return errs.Mark(err, ErrConflict)
	}
	return nil
}

// buildRecord keeps only the admitted mode's fields: a record must never
// carry a scooter range that was not checked for capacity, or a boat date
// that was not checked for exclusivity.
func (u *bookingUseCaseImpl) buildRecord(params CreateBookingParams) booking.Booking {
	status := strings.TrimSpace(params.Status)
	if status == "" {
		status = "pending"
	}

	rec := booking.Booking{
		CustomerName: strings.TrimSpace(params.CustomerName),
		Email:        strings.TrimSpace(params.Email),
		Phone:        strings.TrimSpace(params.Phone),
		LocationID:   strings.TrimSpace(params.LocationID),
		TotalEur:     params.TotalEur,
		Status:       status,
		Notes:        strings.TrimSpace(params.Notes),
		CreatedAt:    u.clock.Now().UTC().Format(time.RFC3339),
	}

	if strings.TrimSpace(params.BoatID) != "" {
		duration := strings.TrimSpace(params.Duration)
		if duration != "7h" {
			duration = "4h"
		}
		rec.BoatID = strings.TrimSpace(params.BoatID)
		rec.RentalDate = strings.TrimSpace(params.RentalDate)
		rec.Duration = duration
		return rec
	}

	rec.ScooterID = strings.TrimSpace(params.ScooterID)
	rec.PickupDate = strings.TrimSpace(params.PickupDate)
	rec.ReturnDate = strings.TrimSpace(params.ReturnDate)
	rec.PickupLocationID = strings.TrimSpace(params.PickupLocationID)
	rec.ReturnLocationID = strings.TrimSpace(params.ReturnLocationID)
	return rec
}
