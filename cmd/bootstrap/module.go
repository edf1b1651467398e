package bootstrap

import (
	"rental-admin-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	IdentityModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
