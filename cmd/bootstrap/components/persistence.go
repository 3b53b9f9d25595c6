package components

import (
	"salon-scheduler/internal/infra/db"
	"salon-scheduler/internal/infra/notifier"
	"salon-scheduler/internal/infra/readstore"
	"salon-scheduler/internal/infra/repository"
	"salon-scheduler/internal/infra/uow"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"
	"salon-scheduler/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Salon
		fx.Annotate(
			readstore.NewSalonReadStore,
			fx.As(new(commands.SalonReads)),
			fx.As(new(queries.SalonScheduleStore)),
		),
		// Staff
		fx.Annotate(
			readstore.NewStaffReadStore,
			fx.As(new(commands.StaffReads)),
			fx.As(new(queries.StaffScheduleStore)),
		),
		// Service
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(commands.ServiceReads)),
			fx.As(new(queries.ServiceStore)),
		),
		// Client
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(commands.ClientReads)),
		),
		// Absence
		fx.Annotate(
			readstore.NewAbsenceReadStore,
			fx.As(new(queries.AbsenceStore)),
		),
		// Booking views
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		// Advisory busy reads share the write path's overlap predicate
		fx.Annotate(
			repository.NewConflictReads,
			fx.As(new(queries.BusyStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork: the concurrency coordinator
		fx.Annotate(
			NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		// Expired-hold sweep
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.HoldStore)),
		),
		// Outbound notifications
		NewNotifier,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, cfg.Booking.TxMaxAttempts)
}

func NewNotifier(cfg config.Config) commands.Notifier {
	return notifier.NewWebhookNotifier(cfg.Notify)
}
