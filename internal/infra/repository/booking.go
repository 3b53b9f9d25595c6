package repository

import (
	"context"
	"errors"
	"time"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const insertBookingSQL = `
INSERT INTO bookings (
	id, salon_id, client_id, staff_id, service_id,
	start_time, end_time, duration_min, price_cents,
	status, is_multi_service, note
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const insertBookingServiceSQL = `
INSERT INTO booking_services (
	booking_id, service_id, staff_id, sequence,
	start_time, end_time, duration_min, price_cents
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Create persists the booking and, for multi-service sessions, its
// line items. It must run inside a coordinator-protected transaction.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	var note *string
	if b.Note() != "" {
		n := b.Note()
		note = &n
	}

	_, err := r.db.Exec(ctx, insertBookingSQL,
		b.ID(), b.SalonID(), b.ClientID(), b.StaffID(), b.ServiceID(),
		b.Span().Start(), b.Span().End(), int(b.Duration().Minutes()), b.PriceCents(),
		b.Status().String(), b.IsMultiService(), note,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking", err)
	}

	if !b.IsMultiService() {
		return nil
	}

	for _, item := range b.Items() {
		_, err := r.db.Exec(ctx, insertBookingServiceSQL,
			b.ID(), item.ServiceID, item.StaffID, item.Sequence,
			item.Interval.Start(), item.Interval.End(),
			int(item.Duration.Minutes()), item.PriceCents,
		)
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking line item", err)
		}
	}
	return nil
}

// Head reconstructs the stored booking, line items included, so the
// entity's transition rules decide what may happen to it.
func (r *BookingRepository) Head(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		bookingID      uuid.UUID
		salonID        uuid.UUID
		clientID       uuid.UUID
		staffID        *uuid.UUID
		serviceID      *uuid.UUID
		start          time.Time
		end            time.Time
		priceCents     int64
		status         string
		canceledAt     *time.Time
		isMultiService bool
		note           *string
		createdAt      time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, salon_id, client_id, staff_id, service_id,
		       start_time, end_time, price_cents, status,
		       canceled_at, is_multi_service, note, created_at
		FROM bookings
		WHERE id = $1`,
		id,
	).Scan(&bookingID, &salonID, &clientID, &staffID, &serviceID,
		&start, &end, &priceCents, &status,
		&canceledAt, &isMultiService, &note, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load booking head", err)
	}

	span, err := booking.NewTimeInterval(start, end)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid stored interval", err)
	}

	var items []booking.LineItem
	if isMultiService {
		items, err = r.lineItems(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	noteText := ""
	if note != nil {
		noteText = *note
	}
	return booking.Reconstruct(
		bookingID, salonID, clientID,
		staffID, serviceID,
		span, priceCents, booking.Status(status),
		canceledAt, isMultiService, items, noteText, createdAt,
	), nil
}

func (r *BookingRepository) lineItems(ctx context.Context, bookingID uuid.UUID) ([]booking.LineItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT service_id, staff_id, sequence, start_time, end_time, duration_min, price_cents
		FROM booking_services
		WHERE booking_id = $1
		ORDER BY sequence`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load booking line items", err)
	}
	defer rows.Close()

	var items []booking.LineItem
	for rows.Next() {
		var (
			item        booking.LineItem
			start, end  time.Time
			durationMin int
		)
		if err := rows.Scan(&item.ServiceID, &item.StaffID, &item.Sequence,
			&start, &end, &durationMin, &item.PriceCents); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan line item", err)
		}
		iv, err := booking.NewTimeInterval(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid stored interval", err)
		}
		item.Interval = iv
		item.Duration = time.Duration(durationMin) * time.Minute
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate line items", err)
	}
	return items, nil
}

// Cancel releases a booking's slot. The status predicate keeps the
// update idempotent and refuses to touch finished bookings.
func (r *BookingRepository) Cancel(ctx context.Context, id uuid.UUID, canceledAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = 'CANCELED', canceled_at = $2, updated_at = now()
		WHERE id = $1 AND status IN ('PENDING', 'CONFIRMED')`,
		id, canceledAt,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "no cancelable booking", nil)
	}
	return nil
}

// CancelStaleUnverified is the expired-hold sweep: one conditional bulk
// update. A hold confirmed between read and write fails the status
// predicate and is left alone, so the sweep is safe to run concurrently
// with itself and with the booking composer.
func (r *BookingRepository) CancelStaleUnverified(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings b
		SET status = 'CANCELED', canceled_at = now(), updated_at = now()
		FROM clients c
		WHERE c.id = b.client_id
		  AND c.verified_at IS NULL
		  AND b.status = 'PENDING'
		  AND b.canceled_at IS NULL
		  AND b.created_at < $1`,
		cutoff,
	)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to sweep expired holds", err)
	}
	return tag.RowsAffected(), nil
}
