package commands

import (
	"context"
	"time"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
// (CQRS separation).
type SalonSnapshot struct {
	ID       uuid.UUID
	Name     string
	Location *time.Location
	Buffers  booking.Buffers
	IsActive bool
}

type StaffSnapshot struct {
	ID       uuid.UUID
	SalonID  uuid.UUID
	Name     string
	IsActive bool
}

type ServiceSnapshot struct {
	ID         uuid.UUID
	SalonID    uuid.UUID
	Name       string
	Duration   time.Duration
	PriceCents int64
	IsActive   bool
}

type ClientSnapshot struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Verified bool
}

type SalonReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalonSnapshot, error)
	WeeklyHours(ctx context.Context, salonID uuid.UUID) (schedule.WeeklyHours, error)
	IsClosedOn(ctx context.Context, salonID uuid.UUID, date time.Time) (bool, error)
}

type StaffReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StaffSnapshot, error)
	// ListActiveBySalon returns active staff in creation order. The
	// order is what makes any-staff assignment deterministic.
	ListActiveBySalon(ctx context.Context, salonID uuid.UUID) ([]StaffSnapshot, error)
	WorkingHours(ctx context.Context, staffID uuid.UUID) (schedule.StaffHours, error)
}

type ServiceReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
}

type ClientReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientSnapshot, error)
}

// Notifier is the outbound notification collaborator. It is called
// strictly after commit; a failed verification request triggers a
// compensating cancellation of the hold it was announcing.
type Notifier interface {
	SendVerificationRequest(ctx context.Context, client ClientSnapshot, bookingID uuid.UUID, holdExpiresAt time.Time) error
	SendBookingConfirmed(ctx context.Context, client ClientSnapshot, bookingID uuid.UUID) error
	SendBookingCanceled(ctx context.Context, client ClientSnapshot, bookingID uuid.UUID) error
}

// HoldStore is the single-statement sweep over expired provisional
// holds.
type HoldStore interface {
	CancelStaleUnverified(ctx context.Context, cutoff time.Time) (int64, error)
}
