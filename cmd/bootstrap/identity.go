package bootstrap

import (
	"rental-admin-api/internal/infra/identity"
	"rental-admin-api/internal/pkg/config"
	"rental-admin-api/internal/usecase"

	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		fx.Annotate(
			NewIdentityVerifier,
			fx.As(new(usecase.IdentityVerifier)),
		),
	),
)

func NewIdentityVerifier(cfg config.Config) *identity.Verifier {
	return identity.NewVerifier(cfg.Identity)
}
