//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"rental-admin-api/internal/infra"
	"rental-admin-api/internal/usecase"
	"rental-admin-api/internal/usecase/readmodel"
	usecasemock "rental-admin-api/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Port Olimpic", "port-olimpic"},
		{"  Cala d'Or  ", "cala-d-or"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER  case!!", "upper-case"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, usecase.Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestLocationCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts under the slugified id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := usecasemock.NewMockLocationStore(ctrl)
		uc := usecase.NewLocationUseCase(mockStore)

		mockStore.EXPECT().Insert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, loc readmodel.Location) error {
				assert.Equal(t, "port-olimpic", loc.ID)
				assert.Equal(t, "port-olimpic", loc.Slug)
				assert.Equal(t, "Port Olimpic", loc.Label)
				return nil
			}).Times(1)

		id, err := uc.Create(ctx, usecase.CreateLocationParams{Slug: "Port Olimpic", Label: "Port Olimpic"})
		require.NoError(t, err)
		assert.Equal(t, "port-olimpic", id)
	})

	t.Run("duplicate slug maps to a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := usecasemock.NewMockLocationStore(ctrl)
		uc := usecase.NewLocationUseCase(mockStore)

		mockStore.EXPECT().Insert(ctx, gomock.Any()).
			Return(infra.WrapRepoErr("duplicate key", errors.New("23505"), infra.KindDuplicateKey)).Times(1)

		_, err := uc.Create(ctx, usecase.CreateLocationParams{Slug: "port-olimpic"})
		assert.ErrorIs(t, err, usecase.ErrSlugExists)
	})

	t.Run("an unslugifiable name fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := usecasemock.NewMockLocationStore(ctrl)
		uc := usecase.NewLocationUseCase(mockStore)

		_, err := uc.Create(ctx, usecase.CreateLocationParams{Slug: "!!!"})
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})
}

func TestLocationUpsert(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockStore := usecasemock.NewMockLocationStore(ctrl)
	uc := usecase.NewLocationUseCase(mockStore)

	label := "New Label"
	items := []usecase.LocationUpsertItem{
		{ID: "port-olimpic", Patch: readmodel.LocationPatch{Label: &label}},
		{ID: "   "}, // skipped: no id
	}

	mockStore.EXPECT().Update(ctx, "port-olimpic", items[0].Patch).Return(nil).Times(1)

	require.NoError(t, uc.Upsert(ctx, items))
}

func TestLocationDelete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockStore := usecasemock.NewMockLocationStore(ctrl)
	uc := usecase.NewLocationUseCase(mockStore)

	t.Run("requires an id", func(t *testing.T) {
		err := uc.Delete(ctx, "  ")
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})

	t.Run("deletes by id", func(t *testing.T) {
		mockStore.EXPECT().Delete(ctx, "port-olimpic").Return(nil).Times(1)
		require.NoError(t, uc.Delete(ctx, "port-olimpic"))
	})
}
