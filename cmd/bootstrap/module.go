package bootstrap

import (
	"residencial-admin/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClockModule,
	JWTModule,
	StoreModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
