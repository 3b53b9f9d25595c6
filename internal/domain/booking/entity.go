package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCanceled = errors.New("booking is already canceled")
	ErrNotCancelable   = errors.New("booking can no longer be canceled")
)

// Booking is the unit of commitment against shared staff and client
// time. Its span is buffer-inclusive; multi-service bookings carry the
// per-service line items.
type Booking struct {
	id             uuid.UUID
	salonID        uuid.UUID
	clientID       uuid.UUID
	staffID        *uuid.UUID // nil for multi-service bookings
	serviceID      *uuid.UUID // nil for multi-service bookings
	span           TimeInterval
	duration       time.Duration
	priceCents     int64
	status         Status
	canceledAt     *time.Time
	isMultiService bool
	items          []LineItem
	note           string
	createdAt      time.Time
}

// NewFromLayout builds a booking from a computed session layout. Single
// service layouts keep the denormalized staff/service columns;
// multi-service ones are described entirely by their line items.
func NewFromLayout(salonID, clientID uuid.UUID, layout SessionLayout, status Status, note string) *Booking {
	b := &Booking{
		id:         uuid.New(),
		salonID:    salonID,
		clientID:   clientID,
		span:       layout.Span,
		duration:   layout.Span.Duration(),
		priceCents: layout.PriceCents,
		status:     status,
		note:       note,
	}
	if len(layout.Items) == 1 {
		item := layout.Items[0]
		b.staffID = &item.StaffID
		b.serviceID = &item.ServiceID
	} else {
		b.isMultiService = true
	}
	b.items = layout.Items
	return b
}

func Reconstruct(
	id, salonID, clientID uuid.UUID,
	staffID, serviceID *uuid.UUID,
	span TimeInterval,
	priceCents int64,
	status Status,
	canceledAt *time.Time,
	isMultiService bool,
	items []LineItem,
	note string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		salonID:        salonID,
		clientID:       clientID,
		staffID:        staffID,
		serviceID:      serviceID,
		span:           span,
		duration:       span.Duration(),
		priceCents:     priceCents,
		status:         status,
		canceledAt:     canceledAt,
		isMultiService: isMultiService,
		items:          items,
		note:           note,
		createdAt:      createdAt,
	}
}

// Cancel releases the slot. Completed and in-progress bookings are past
// the point of cancellation.
func (b *Booking) Cancel(now time.Time) error {
	switch b.status {
	case StatusCanceled, StatusNoShow:
		return ErrAlreadyCanceled
	case StatusInProgress, StatusCompleted:
		return ErrNotCancelable
	}
	b.status = StatusCanceled
	b.canceledAt = &now
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

func (b *Booking) HasEnded(now time.Time) bool {
	return !now.Before(b.span.End())
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) SalonID() uuid.UUID      { return b.salonID }
func (b *Booking) ClientID() uuid.UUID     { return b.clientID }
func (b *Booking) StaffID() *uuid.UUID     { return b.staffID }
func (b *Booking) ServiceID() *uuid.UUID   { return b.serviceID }
func (b *Booking) Span() TimeInterval      { return b.span }
func (b *Booking) Duration() time.Duration { return b.duration }
func (b *Booking) PriceCents() int64       { return b.priceCents }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CanceledAt() *time.Time  { return b.canceledAt }
func (b *Booking) IsMultiService() bool    { return b.isMultiService }
func (b *Booking) Items() []LineItem       { return b.items }
func (b *Booking) Note() string            { return b.note }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
