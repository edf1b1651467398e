//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"rental-admin-api/internal/usecase"
	"rental-admin-api/internal/usecase/readmodel"
	usecasemock "rental-admin-api/tests/mock/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var priceMatrix = []readmodel.Price{
	{ScooterID: "sh-125", Season: "low", Days: 1, PriceEur: 35},
	{ScooterID: "sh-125", Season: "high", Days: 1, PriceEur: 45},
	{ScooterID: "sh-125", Season: "high", Days: 3, PriceEur: 120},
	{ScooterID: "voge-rally-300", Season: "high", Days: 1, PriceEur: 60},
}

func TestPricingList(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := usecasemock.NewMockPriceStore(ctrl)
	uc := usecase.NewPricingUseCase(mockStore)
	ctx := context.Background()

	days1 := 1

	tests := []struct {
		name   string
		filter usecase.PriceFilter
		want   []readmodel.Price
	}{
		{
			name:   "no filter returns everything",
			filter: usecase.PriceFilter{},
			want:   priceMatrix,
		},
		{
			name:   "scooter filter",
			filter: usecase.PriceFilter{ScooterID: "voge-rally-300"},
			want:   []readmodel.Price{{ScooterID: "voge-rally-300", Season: "high", Days: 1, PriceEur: 60}},
		},
		{
			name:   "filters combine with AND",
			filter: usecase.PriceFilter{ScooterID: "sh-125", Season: "high", Days: &days1},
			want:   []readmodel.Price{{ScooterID: "sh-125", Season: "high", Days: 1, PriceEur: 45}},
		},
		{
			name:   "no match yields an empty slice",
			filter: usecase.PriceFilter{Season: "mid"},
			want:   []readmodel.Price{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore.EXPECT().ListAll(ctx).Return(priceMatrix, nil).Times(1)

			got, err := uc.List(ctx, tt.filter)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("price list mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPricingUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := usecasemock.NewMockPriceStore(ctrl)
	uc := usecase.NewPricingUseCase(mockStore)
	ctx := context.Background()

	items := []readmodel.Price{
		{ScooterID: " sh-125 ", Season: "high", Days: 3, PriceEur: 120},
		{ScooterID: "", Season: "high", Days: 1, PriceEur: 40},   // skipped: no scooter
		{ScooterID: "sh-125", Season: "", Days: 1, PriceEur: 40}, // skipped: no season
		{ScooterID: "sh-125", Season: "high", Days: 0, PriceEur: 40},
		{ScooterID: "sh-125", Season: "high", Days: 8, PriceEur: 40},
	}

	mockStore.EXPECT().
		Upsert(ctx, "sh-125_high_3", readmodel.Price{ScooterID: "sh-125", Season: "high", Days: 3, PriceEur: 120}).
		Return(nil).Times(1)

	require.NoError(t, uc.Upsert(ctx, items))
}

func TestPriceDocID(t *testing.T) {
	id := usecase.PriceDocID(readmodel.Price{ScooterID: "sh-125", Season: "high", Days: 3})
	require.Equal(t, "sh-125_high_3", id)
}
