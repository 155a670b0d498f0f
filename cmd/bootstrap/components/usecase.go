package components

import (
	"agora-exchange/internal/pkg/clock"
	"agora-exchange/internal/usecase/supply"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSupplyModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseSupplyModule = fx.Module("usecase/supply",
	fx.Provide(
		supply.NewEffectiveResourceService,
	),
)
