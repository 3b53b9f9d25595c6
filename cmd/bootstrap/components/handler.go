package components

import (
	"salon-scheduler/internal/handler"
	"salon-scheduler/internal/handler/api"
	"salon-scheduler/internal/handler/middleware"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
		NewSweepMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewSweepMiddleware(expiration commands.ExpirationCommands, cfg config.Config) *middleware.SweepMiddleware {
	return middleware.NewSweepMiddleware(expiration, cfg.Booking.SweepSampleRate)
}
