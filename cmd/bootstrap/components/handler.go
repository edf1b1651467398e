package components

import (
	"rental-admin-api/internal/handler"
	"rental-admin-api/internal/handler/api"
	"rental-admin-api/internal/handler/middleware"
	"rental-admin-api/internal/pkg/config"
	"rental-admin-api/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewBookingHandler,
		api.NewBoatHandler,
		api.NewScooterHandler,
		api.NewPriceHandler,
		api.NewLocationHandler,
		api.NewContactHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(authUseCase, cfg.Cookie)
}

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	boat *api.BoatHandler,
	scooter *api.ScooterHandler,
	price *api.PriceHandler,
	location *api.LocationHandler,
	contact *api.ContactHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Booking:  booking,
		Boat:     boat,
		Scooter:  scooter,
		Price:    price,
		Location: location,
		Contact:  contact,
	}
}
