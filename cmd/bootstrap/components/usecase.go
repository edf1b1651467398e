package components

import (
	"rental-admin-api/internal/pkg/clock"
	"rental-admin-api/internal/pkg/config"
	"rental-admin-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewAuthUseCase,
		usecase.NewBookingUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewPricingUseCase,
		usecase.NewLocationUseCase,
		usecase.NewContactUseCase,
	),
)

func NewAuthUseCase(verifier usecase.IdentityVerifier, cfg config.Config) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(verifier, cfg.Identity.AdminAllowlist())
}
