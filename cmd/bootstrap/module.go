package bootstrap

import (
	"agora-exchange/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.UseCaseModule,
	components.HandlerModule,
)
