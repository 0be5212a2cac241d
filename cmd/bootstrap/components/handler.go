package components

import (
	"peer-tutor-scheduler/internal/handler"
	"peer-tutor-scheduler/internal/handler/api"
	"peer-tutor-scheduler/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewHelpRequestHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
