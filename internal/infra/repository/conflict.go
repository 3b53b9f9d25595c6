package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ConflictReads answers the write path's conflict questions with fresh
// in-transaction SQL. The overlap predicate is rendered by
// booking.OverlapSQL so it stays the exact SQL counterpart of the
// in-memory check.
type ConflictReads struct {
	db db.DBTX
}

func NewConflictReads(dbtx db.DBTX) *ConflictReads {
	return &ConflictReads{db: dbtx}
}

func (r *ConflictReads) ActiveClientBookingAtSalon(ctx context.Context, clientID, salonID uuid.UUID, now time.Time) (*booking.Commitment, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, client_id, start_time, end_time, status
		FROM bookings
		WHERE client_id = $1
		  AND salon_id = $2
		  AND status IN ('PENDING', 'CONFIRMED', 'IN_PROGRESS')
		  AND end_time > $3
		ORDER BY start_time
		LIMIT 1`,
		clientID, salonID, now,
	)

	c, err := scanCommitment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query active client booking", err)
	}
	return &c, nil
}

func (r *ConflictReads) ClientOverlapping(ctx context.Context, clientID uuid.UUID, span booking.TimeInterval) ([]booking.Commitment, error) {
	query := fmt.Sprintf(`
		SELECT id, client_id, start_time, end_time, status
		FROM bookings
		WHERE client_id = $1
		  AND status NOT IN ('CANCELED', 'NO_SHOW')
		  AND %s
		ORDER BY start_time`,
		booking.OverlapSQL("start_time", "end_time", 2, 3),
	)

	rows, err := r.db.Query(ctx, query, clientID, span.Start(), span.End())
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query client overlaps", err)
	}
	defer rows.Close()

	return collectCommitments(rows)
}

// StaffOverlapping considers both whole bookings assigned to the staff
// member and their line items inside multi-service sessions.
func (r *ConflictReads) StaffOverlapping(ctx context.Context, staffID uuid.UUID, span booking.TimeInterval) ([]booking.Commitment, error) {
	query := fmt.Sprintf(`
		SELECT id, staff_id, start_time, end_time, status
		FROM bookings
		WHERE staff_id = $1
		  AND status NOT IN ('CANCELED', 'NO_SHOW')
		  AND %s
		UNION ALL
		SELECT bs.booking_id, bs.staff_id, bs.start_time, bs.end_time, b.status
		FROM booking_services bs
		JOIN bookings b ON b.id = bs.booking_id
		WHERE bs.staff_id = $1
		  AND b.is_multi_service
		  AND b.status NOT IN ('CANCELED', 'NO_SHOW')
		  AND %s
		ORDER BY start_time`,
		booking.OverlapSQL("start_time", "end_time", 2, 3),
		booking.OverlapSQL("bs.start_time", "bs.end_time", 2, 3),
	)

	rows, err := r.db.Query(ctx, query, staffID, span.Start(), span.End())
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query staff overlaps", err)
	}
	defer rows.Close()

	return collectCommitments(rows)
}

func scanCommitment(row pgx.Row) (booking.Commitment, error) {
	var (
		c      booking.Commitment
		start  time.Time
		end    time.Time
		status string
	)
	if err := row.Scan(&c.BookingID, &c.SubjectID, &start, &end, &status); err != nil {
		return booking.Commitment{}, err
	}
	iv, err := booking.NewTimeInterval(start, end)
	if err != nil {
		return booking.Commitment{}, err
	}
	c.Interval = iv
	c.Status = booking.Status(status)
	return c, nil
}

func collectCommitments(rows pgx.Rows) ([]booking.Commitment, error) {
	var out []booking.Commitment
	for rows.Next() {
		c, err := scanCommitment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan commitment", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate commitments", err)
	}
	return out, nil
}
