package components

import (
	"rental-admin-api/internal/infra/docstore"
	"rental-admin-api/internal/infra/store"
	"rental-admin-api/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		docstore.New,
		fx.Annotate(
			store.NewBookingStore,
			fx.As(new(usecase.BookingStore)),
		),
		fx.Annotate(
			store.NewBoatStore,
			fx.As(new(usecase.BoatStore)),
		),
		fx.Annotate(
			store.NewScooterStore,
			fx.As(new(usecase.ScooterStore)),
		),
		fx.Annotate(
			store.NewPriceStore,
			fx.As(new(usecase.PriceStore)),
		),
		fx.Annotate(
			store.NewLocationStore,
			fx.As(new(usecase.LocationStore)),
		),
		fx.Annotate(
			store.NewContactStore,
			fx.As(new(usecase.ContactStore)),
		),
	),
)
