//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"rental-admin-api/internal/usecase"
	"rental-admin-api/internal/usecase/readmodel"
	usecasemock "rental-admin-api/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogUseCaseTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockBoats    *usecasemock.MockBoatStore
	mockScooters *usecasemock.MockScooterStore
	useCase      usecase.CatalogUseCase
}

func (s *CatalogUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBoats = usecasemock.NewMockBoatStore(s.mockCtrl)
	s.mockScooters = usecasemock.NewMockScooterStore(s.mockCtrl)
	s.useCase = usecase.NewCatalogUseCase(s.mockBoats, s.mockScooters)
}

func (s *CatalogUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CatalogUseCaseTestSuite))
}

func (s *CatalogUseCaseTestSuite) TestListBoats() {
	ctx := context.Background()

	s.Run("seeds the default fleet when the collection is empty", func() {
		defaults := usecase.DefaultBoats()

		gomock.InOrder(
			s.mockBoats.EXPECT().ListAll(ctx).Return(nil, nil),
			s.mockBoats.EXPECT().Seed(ctx, gomock.Any()).Return(nil),
			s.mockBoats.EXPECT().ListAll(ctx).Return(defaults, nil),
		)

		boats, err := s.useCase.ListBoats(ctx)
		s.Require().NoError(err)
		s.Require().Len(boats, 3)
		s.Equal("boat1", boats[0].ID)

		// boat2 ships with its gallery; the others carry the cover image only.
		s.Empty(boats[0].ImageURLs)
		s.Len(boats[1].ImageURLs, 6)
		s.Empty(boats[2].ImageURLs)
	})

	s.Run("sorts by sortOrder", func() {
		s.mockBoats.EXPECT().ListAll(ctx).Return([]readmodel.Boat{
			{ID: "b", SortOrder: 2},
			{ID: "a", SortOrder: 1},
		}, nil).Times(1)

		boats, err := s.useCase.ListBoats(ctx)
		s.Require().NoError(err)
		s.Equal("a", boats[0].ID)
		s.Equal("b", boats[1].ID)
	})
}

func (s *CatalogUseCaseTestSuite) TestListScooters() {
	ctx := context.Background()

	s.Run("overlays stored documents on the default fleet", func() {
		s.mockScooters.EXPECT().ListAll(ctx).Return([]readmodel.Scooter{
			{ID: "sh-125", Label: "SH 125", Quantity: 4},
			{ID: "custom-500", Label: "Custom 500", Quantity: 1},
		}, nil).Times(1)

		scooters, err := s.useCase.ListScooters(ctx)
		s.Require().NoError(err)
		s.Require().Len(scooters, 5)

		byID := make(map[string]readmodel.Scooter)
		for _, sc := range scooters {
			byID[sc.ID] = sc
		}
		s.Equal(4, byID["sh-125"].Quantity)
		s.Equal(0, byID["liberty-125"].Quantity)
		s.Equal("LIBERTY 125", byID["liberty-125"].Label)
		s.Equal(1, byID["custom-500"].Quantity)
	})

	s.Run("unknown scooters with no label fall back to their id", func() {
		s.mockScooters.EXPECT().ListAll(ctx).Return([]readmodel.Scooter{
			{ID: "mystery", Quantity: 2},
		}, nil).Times(1)

		scooters, err := s.useCase.ListScooters(ctx)
		s.Require().NoError(err)

		var found readmodel.Scooter
		for _, sc := range scooters {
			if sc.ID == "mystery" {
				found = sc
			}
		}
		s.Equal("mystery", found.Label)
	})
}

func (s *CatalogUseCaseTestSuite) TestUpdateBoat() {
	ctx := context.Background()
	price := 220.0

	s.Run("requires an id", func() {
		err := s.useCase.UpdateBoat(ctx, "  ", readmodel.BoatPatch{Price4h: &price})
		s.ErrorIs(err, usecase.ErrValidation)
	})

	s.Run("an empty patch is a no-op", func() {
		s.NoError(s.useCase.UpdateBoat(ctx, "boat1", readmodel.BoatPatch{}))
	})

	s.Run("forwards the patch to the store", func() {
		patch := readmodel.BoatPatch{Price4h: &price}
		s.mockBoats.EXPECT().Update(ctx, "boat1", patch).Return(nil).Times(1)
		s.NoError(s.useCase.UpdateBoat(ctx, "boat1", patch))
	})
}

func (s *CatalogUseCaseTestSuite) TestUpdateScooter() {
	ctx := context.Background()
	qty := 5

	s.Run("requires an id", func() {
		err := s.useCase.UpdateScooter(ctx, "", readmodel.ScooterPatch{Quantity: &qty})
		s.ErrorIs(err, usecase.ErrValidation)
	})

	s.Run("forwards the patch to the store", func() {
		patch := readmodel.ScooterPatch{Quantity: &qty}
		s.mockScooters.EXPECT().Update(ctx, "sh-125", patch).Return(nil).Times(1)
		s.NoError(s.useCase.UpdateScooter(ctx, "sh-125", patch))
	})
}
