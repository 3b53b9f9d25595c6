package readstore

import (
	"context"
	"errors"
	"time"

	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/infra/db"
	"salon-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view       queries.BookingView
		staffID    *uuid.UUID
		serviceID  *uuid.UUID
		note       *string
		canceledAt *time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, salon_id, client_id, staff_id, service_id,
		       start_time, end_time, duration_min, price_cents,
		       status, is_multi_service, note, canceled_at, created_at
		FROM bookings
		WHERE id = $1`,
		id,
	).Scan(
		&view.ID, &view.SalonID, &view.ClientID, &staffID, &serviceID,
		&view.StartTime, &view.EndTime, &view.DurationMin, &view.PriceCents,
		&view.Status, &view.IsMultiService, &note, &canceledAt, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}
	view.StaffID = staffID
	view.ServiceID = serviceID
	view.Note = note
	view.CanceledAt = canceledAt

	if view.IsMultiService {
		items, err := r.findItems(ctx, id)
		if err != nil {
			return nil, err
		}
		view.Services = items
	}
	return &view, nil
}

func (r *BookingReadStore) findItems(ctx context.Context, bookingID uuid.UUID) ([]queries.BookingItemView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT service_id, staff_id, sequence, start_time, end_time, duration_min, price_cents
		FROM booking_services
		WHERE booking_id = $1
		ORDER BY sequence`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to load booking items", err)
	}
	defer rows.Close()

	var out []queries.BookingItemView
	for rows.Next() {
		var item queries.BookingItemView
		if err := rows.Scan(
			&item.ServiceID, &item.StaffID, &item.Sequence,
			&item.StartTime, &item.EndTime, &item.DurationMin, &item.PriceCents,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking item", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate booking items", err)
	}
	return out, nil
}

// FindByClient lists the client's bookings newest first.
func (r *BookingReadStore) FindByClient(ctx context.Context, clientID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, salon_id, start_time, end_time, price_cents, status, created_at
		FROM bookings
		WHERE client_id = $1
		ORDER BY start_time DESC, id DESC
		LIMIT $2`,
		clientID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list client bookings", err)
	}
	defer rows.Close()

	var out []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.SalonID, &item.StartTime, &item.EndTime,
			&item.PriceCents, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan client booking", err)
		}
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate client bookings", err)
	}
	return out, nil
}
