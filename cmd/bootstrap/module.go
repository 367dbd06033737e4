package bootstrap

import (
	"voucher-hub/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	ControllerModule,
	CacheModule,
	components.UseCaseModule,
	components.HandlerModule,
)
