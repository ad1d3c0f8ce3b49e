package components

import (
	"salon-booking-api/internal/handler"
	"salon-booking-api/internal/handler/api"
	"salon-booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAppointmentHandler,
		api.NewWebhookHandler,
		api.NewContactHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
