package readstore

import (
	"context"
	"errors"
	"time"

	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/infra/db"
	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type StaffReadStore struct {
	db db.DBTX
}

func NewStaffReadStore(dbtx db.DBTX) *StaffReadStore {
	return &StaffReadStore{db: dbtx}
}

func (r *StaffReadStore) FindByID(ctx context.Context, id uuid.UUID) (*commands.StaffSnapshot, error) {
	var snap commands.StaffSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, salon_id, name, is_active
		FROM staff
		WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.SalonID, &snap.Name, &snap.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "staff not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find staff", err)
	}
	return &snap, nil
}

// ListActiveBySalon returns active staff in creation order. Any-staff
// assignment walks this list front to back, so the order must be
// stable across replicas.
func (r *StaffReadStore) ListActiveBySalon(ctx context.Context, salonID uuid.UUID) ([]commands.StaffSnapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, salon_id, name, is_active
		FROM staff
		WHERE salon_id = $1 AND is_active
		ORDER BY created_at, id`,
		salonID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list staff", err)
	}
	defer rows.Close()

	var out []commands.StaffSnapshot
	for rows.Next() {
		var snap commands.StaffSnapshot
		if err := rows.Scan(&snap.ID, &snap.SalonID, &snap.Name, &snap.IsActive); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan staff", err)
		}
		out = append(out, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate staff", err)
	}
	return out, nil
}

// Staff is the read-side projection of FindByID.
func (r *StaffReadStore) Staff(ctx context.Context, id uuid.UUID) (*queries.StaffInfo, error) {
	snap, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := staffInfo(*snap)
	return &info, nil
}

func (r *StaffReadStore) ActiveStaff(ctx context.Context, salonID uuid.UUID) ([]queries.StaffInfo, error) {
	snaps, err := r.ListActiveBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	out := make([]queries.StaffInfo, len(snaps))
	for i, s := range snaps {
		out[i] = staffInfo(s)
	}
	return out, nil
}

func staffInfo(s commands.StaffSnapshot) queries.StaffInfo {
	return queries.StaffInfo{
		ID:       s.ID,
		SalonID:  s.SalonID,
		Name:     s.Name,
		IsActive: s.IsActive,
	}
}

// WorkingHours loads the staff member's single working range per
// weekday. Days without a row mean the staff member is off.
func (r *StaffReadStore) WorkingHours(ctx context.Context, staffID uuid.UUID) (schedule.StaffHours, error) {
	rows, err := r.db.Query(ctx, `
		SELECT weekday, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI')
		FROM staff_weekly_hours
		WHERE staff_id = $1
		ORDER BY weekday`,
		staffID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load staff hours", err)
	}
	defer rows.Close()

	hours := make(schedule.StaffHours)
	for rows.Next() {
		var (
			weekday      int
			startS, endS string
		)
		if err := rows.Scan(&weekday, &startS, &endS); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan staff hours", err)
		}
		start, err := schedule.ParseWallClock(startS)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid staff hours", err)
		}
		end, err := schedule.ParseWallClock(endS)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid staff hours", err)
		}
		hours[time.Weekday(weekday)] = schedule.WallWindow{Start: start, End: end}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate staff hours", err)
	}
	return hours, nil
}
