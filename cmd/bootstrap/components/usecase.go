package components

import (
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"
	"salon-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewBookingCommands,
		NewExpirationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		NewAvailabilityQueries,
	),
)

func NewBookingCommands(
	uow shared.UnitOfWork,
	salonReads commands.SalonReads,
	staffReads commands.StaffReads,
	serviceReads commands.ServiceReads,
	clientReads commands.ClientReads,
	notifier commands.Notifier,
	clk clock.Clock,
	cfg config.Config,
) commands.BookingCommands {
	return commands.NewBookingCommands(
		uow, salonReads, staffReads, serviceReads, clientReads,
		notifier, clk, cfg.Booking.HoldDuration,
	)
}

func NewExpirationCommands(store commands.HoldStore, clk clock.Clock, cfg config.Config) commands.ExpirationCommands {
	return commands.NewExpirationCommands(store, clk, cfg.Booking.HoldDuration)
}

func NewAvailabilityQueries(
	salons queries.SalonScheduleStore,
	staff queries.StaffScheduleStore,
	services queries.ServiceStore,
	absences queries.AbsenceStore,
	busy queries.BusyStore,
	cfg config.Config,
) queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(salons, staff, services, absences, busy, cfg.Booking.SlotGranularity)
}
