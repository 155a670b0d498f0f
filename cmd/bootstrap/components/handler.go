package components

import (
	"agora-exchange/internal/handler"
	"agora-exchange/internal/handler/api"
	"agora-exchange/internal/usecase/shared"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			api.NewHealthHandler,
			fx.From(new(shared.UnitOfWork)),
		),
		api.NewEffectiveResourceHandler,
	),
	fx.Invoke(handler.NewRouter),
)
