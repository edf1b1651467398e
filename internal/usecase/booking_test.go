//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-admin-api/internal/domain/booking"
	"rental-admin-api/internal/infra"
	"rental-admin-api/internal/pkg/clock"
	"rental-admin-api/internal/usecase"
	"rental-admin-api/internal/usecase/readmodel"
	usecasemock "rental-admin-api/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockBookings *usecasemock.MockBookingStore
	mockScooters *usecasemock.MockScooterStore
	useCase      usecase.BookingUseCase
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = usecasemock.NewMockBookingStore(s.mockCtrl)
	s.mockScooters = usecasemock.NewMockScooterStore(s.mockCtrl)

	fixed := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)
	s.useCase = usecase.NewBookingUseCase(s.mockBookings, s.mockScooters, clock.NewMockClock(fixed))
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func (s *BookingUseCaseTestSuite) TestCreateBoat() {
	ctx := context.Background()

	params := usecase.CreateBookingParams{
		CustomerName: "  Ana  ",
		Email:        "ana@example.com",
		BoatID:       "boat1",
		RentalDate:   "2024-07-01",
		Duration:     "unexpected",
	}

	s.Run("admits a free day and persists the normalized record", func() {
		s.mockBookings.EXPECT().ListForBoatDate(ctx, "boat1", "2024-07-01").
			Return(nil, nil).Times(1)
		s.mockBookings.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b booking.Booking) (string, error) {
				s.Equal("Ana", b.CustomerName)
				s.Equal("pending", b.Status)
				s.Equal("4h", b.Duration)
				s.Equal("2024-06-15T09:30:00Z", b.CreatedAt)
				return "new-id", nil
			}).Times(1)

		id, err := s.useCase.Create(ctx, params)
		s.Require().NoError(err)
		s.Equal("new-id", id)
	})

	s.Run("rejects a taken day with a conflict", func() {
		s.mockBookings.EXPECT().ListForBoatDate(ctx, "boat1", "2024-07-01").
			Return([]booking.Booking{
				{BoatID: "boat1", RentalDate: "2024-07-01", Status: "pending"},
			}, nil).Times(1)

		_, err := s.useCase.Create(ctx, params)
		s.Require().Error(err)
		s.ErrorIs(err, usecase.ErrConflict)
		s.ErrorIs(err, booking.ErrDateTaken)
	})

	s.Run("a cancelled booking does not block the day", func() {
		s.mockBookings.EXPECT().ListForBoatDate(ctx, "boat1", "2024-07-01").
			Return([]booking.Booking{
				{BoatID: "boat1", RentalDate: "2024-07-01", Status: "Cancelled"},
			}, nil).Times(1)
		s.mockBookings.EXPECT().Create(ctx, gomock.Any()).
			Return("new-id", nil).Times(1)

		_, err := s.useCase.Create(ctx, params)
		s.NoError(err)
	})

	s.Run("scooter fields are dropped when boat mode wins", func() {
		mixed := params
		mixed.ScooterID = "sh-125"
		mixed.PickupDate = "2024-07-10"
		mixed.ReturnDate = "2024-07-12"

		s.mockBookings.EXPECT().ListForBoatDate(ctx, "boat1", "2024-07-01").
			Return(nil, nil).Times(1)
		s.mockBookings.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b booking.Booking) (string, error) {
				// The range never passed a capacity check, so it must not be
				// stored where scooter scans would count it.
				s.Equal("boat1", b.BoatID)
				s.Empty(b.ScooterID)
				s.Empty(b.PickupDate)
				s.Empty(b.ReturnDate)
				return "new-id", nil
			}).Times(1)

		_, err := s.useCase.Create(ctx, mixed)
		s.NoError(err)
	})

	s.Run("missing rental date fails validation before any store call", func() {
		bad := params
		bad.RentalDate = ""

		_, err := s.useCase.Create(ctx, bad)
		s.Require().Error(err)
		s.ErrorIs(err, usecase.ErrValidation)
		s.ErrorIs(err, booking.ErrMissingDate)
	})
}

func (s *BookingUseCaseTestSuite) TestCreateScooter() {
	ctx := context.Background()

	params := usecase.CreateBookingParams{
		CustomerName: "Marc",
		Email:        "marc@example.com",
		ScooterID:    "sh-125",
		PickupDate:   "2024-07-01",
		ReturnDate:   "2024-07-04",
	}

	overlapping := []booking.Booking{
		{ScooterID: "sh-125", PickupDate: "2024-06-30", ReturnDate: "2024-07-02", Status: "pending"},
		{ScooterID: "sh-125", PickupDate: "2024-07-03", ReturnDate: "2024-07-05", Status: "confirmed"},
	}

	s.Run("rejects when the fleet is exhausted", func() {
		s.mockScooters.EXPECT().Get(ctx, "sh-125").
			Return(readmodel.Scooter{ID: "sh-125", Quantity: 2}, nil).Times(1)
		s.mockBookings.EXPECT().ListForScooter(ctx, "sh-125").
			Return(overlapping, nil).Times(1)

		_, err := s.useCase.Create(ctx, params)
		s.Require().Error(err)
		s.ErrorIs(err, usecase.ErrConflict)
		s.ErrorIs(err, booking.ErrNoCapacity)
	})

	s.Run("admits when one unit remains", func() {
		s.mockScooters.EXPECT().Get(ctx, "sh-125").
			Return(readmodel.Scooter{ID: "sh-125", Quantity: 3}, nil).Times(1)
		s.mockBookings.EXPECT().ListForScooter(ctx, "sh-125").
			Return(overlapping, nil).Times(1)
		s.mockBookings.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b booking.Booking) (string, error) {
				s.Empty(b.Duration)
				return "new-id", nil
			}).Times(1)

		_, err := s.useCase.Create(ctx, params)
		s.NoError(err)
	})

	s.Run("a touching range does not count against capacity", func() {
		s.mockScooters.EXPECT().Get(ctx, "sh-125").
			Return(readmodel.Scooter{ID: "sh-125", Quantity: 1}, nil).Times(1)
		s.mockBookings.EXPECT().ListForScooter(ctx, "sh-125").
			Return([]booking.Booking{
				{ScooterID: "sh-125", PickupDate: "2024-06-28", ReturnDate: "2024-07-01", Status: "pending"},
			}, nil).Times(1)
		s.mockBookings.EXPECT().Create(ctx, gomock.Any()).
			Return("new-id", nil).Times(1)

		_, err := s.useCase.Create(ctx, params)
		s.NoError(err)
	})

	s.Run("an unknown scooter id is never bookable", func() {
		s.mockScooters.EXPECT().Get(ctx, "sh-125").
			Return(readmodel.Scooter{}, infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)).Times(1)
		s.mockBookings.EXPECT().ListForScooter(ctx, "sh-125").
			Return(nil, nil).Times(1)

		_, err := s.useCase.Create(ctx, params)
		s.Require().Error(err)
		s.ErrorIs(err, usecase.ErrConflict)
	})

	s.Run("inverted range fails validation", func() {
		bad := params
		bad.PickupDate = "2024-07-04"
		bad.ReturnDate = "2024-07-01"

		_, err := s.useCase.Create(ctx, bad)
		s.Require().Error(err)
		s.ErrorIs(err, usecase.ErrValidation)
	})
}

func (s *BookingUseCaseTestSuite) TestCreateWithoutResource() {
	_, err := s.useCase.Create(context.Background(), usecase.CreateBookingParams{
		CustomerName: "Ana",
	})
	s.Require().Error(err)
	s.ErrorIs(err, usecase.ErrValidation)
	s.ErrorIs(err, booking.ErrMissingResourceID)
}

func (s *BookingUseCaseTestSuite) TestList() {
	ctx := context.Background()

	s.mockBookings.EXPECT().ListAll(ctx).
		Return([]booking.Booking{
			{ID: "old", CreatedAt: "2024-06-01T00:00:00Z"},
			{ID: "new", CreatedAt: "2024-07-01T00:00:00Z"},
		}, nil).Times(1)

	list, err := s.useCase.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("new", list[0].ID)
	s.Equal("old", list[1].ID)
}
