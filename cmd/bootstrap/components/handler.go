package components

import (
	"museum-booking/internal/handler"
	"museum-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewExhibitHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
