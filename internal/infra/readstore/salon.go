package readstore

import (
	"context"
	"errors"
	"time"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/infra/db"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SalonReadStore struct {
	db db.DBTX
}

func NewSalonReadStore(dbtx db.DBTX) *SalonReadStore {
	return &SalonReadStore{db: dbtx}
}

func (r *SalonReadStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.SalonSnapshot, error) {
	var (
		snap       commands.SalonSnapshot
		tzName     string
		beforeMin  int
		afterMin   int
		processMin int
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, timezone, buffer_before_min, buffer_after_min, processing_time_min, is_active
		FROM salons
		WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.Name, &tzName, &beforeMin, &afterMin, &processMin, &snap.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "salon not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find salon", err)
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid salon timezone", err)
	}
	snap.Location = loc
	snap.Buffers = booking.Buffers{
		Before:     time.Duration(beforeMin) * time.Minute,
		After:      time.Duration(afterMin) * time.Minute,
		Processing: time.Duration(processMin) * time.Minute,
	}
	return &snap, nil
}

// Salon is the read-side projection of FindByID.
func (r *SalonReadStore) Salon(ctx context.Context, id uuid.UUID) (*queries.SalonInfo, error) {
	snap, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.SalonInfo{
		ID:       snap.ID,
		Location: snap.Location,
		Buffers:  snap.Buffers,
		IsActive: snap.IsActive,
	}, nil
}

// WeeklyHours loads the salon's configured opening windows. Times come
// back as "HH:MI" text so the wall-clock parser owns the format.
func (r *SalonReadStore) WeeklyHours(ctx context.Context, salonID uuid.UUID) (schedule.WeeklyHours, error) {
	rows, err := r.db.Query(ctx, `
		SELECT weekday, is_closed, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM salon_weekly_hours
		WHERE salon_id = $1
		ORDER BY weekday, ordinal`,
		salonID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load salon hours", err)
	}
	defer rows.Close()

	hours := make(schedule.WeeklyHours)
	for rows.Next() {
		var (
			weekday      int
			closed       bool
			startS, endS string
		)
		if err := rows.Scan(&weekday, &closed, &startS, &endS); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan salon hours", err)
		}

		day := hours[time.Weekday(weekday)]
		if closed {
			day.Closed = true
			hours[time.Weekday(weekday)] = day
			continue
		}

		start, err := schedule.ParseWallClock(startS)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid salon hours", err)
		}
		end, err := schedule.ParseWallClock(endS)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid salon hours", err)
		}
		day.Windows = append(day.Windows, schedule.WallWindow{Start: start, End: end})
		hours[time.Weekday(weekday)] = day
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate salon hours", err)
	}
	return hours, nil
}

func (r *SalonReadStore) IsClosedOn(ctx context.Context, salonID uuid.UUID, date time.Time) (bool, error) {
	var closed bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM salon_closures
			WHERE salon_id = $1 AND closed_on = $2::date
		)`,
		salonID, date,
	).Scan(&closed)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check salon closure", err)
	}
	return closed, nil
}
