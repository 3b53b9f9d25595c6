package readstore

import (
	"context"
	"time"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/infra/db"

	"github.com/google/uuid"
)

type AbsenceReadStore struct {
	db db.DBTX
}

func NewAbsenceReadStore(dbtx db.DBTX) *AbsenceReadStore {
	return &AbsenceReadStore{db: dbtx}
}

// ApprovedOverlapping loads approved absences touching the date span
// and widens each date range to an absolute interval in the salon's
// timezone: midnight of the first day through midnight after the last.
func (r *AbsenceReadStore) ApprovedOverlapping(ctx context.Context, staffID uuid.UUID, from, to time.Time, loc *time.Location) ([]schedule.Absence, error) {
	rows, err := r.db.Query(ctx, `
		SELECT staff_id, start_date, end_date
		FROM absences
		WHERE staff_id = $1
		  AND status = 'APPROVED'
		  AND start_date <= $3::date
		  AND end_date >= $2::date
		ORDER BY start_date`,
		staffID, from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load absences", err)
	}
	defer rows.Close()

	var out []schedule.Absence
	for rows.Next() {
		var (
			sid        uuid.UUID
			start, end time.Time
		)
		if err := rows.Scan(&sid, &start, &end); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan absence", err)
		}

		iv := booking.MustInterval(
			time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc),
			time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1),
		)
		out = append(out, schedule.Absence{
			StaffID:  sid,
			Interval: iv,
			Status:   schedule.AbsenceApproved,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate absences", err)
	}
	return out, nil
}
