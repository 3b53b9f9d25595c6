package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID             uuid.UUID         `json:"id"`
	SalonID        uuid.UUID         `json:"salon_id"`
	ClientID       uuid.UUID         `json:"client_id"`
	StaffID        *uuid.UUID        `json:"staff_id,omitempty"`
	ServiceID      *uuid.UUID        `json:"service_id,omitempty"`
	StartTime      time.Time         `json:"start_time"`
	EndTime        time.Time         `json:"end_time"`
	DurationMin    int               `json:"duration_min"`
	PriceCents     int64             `json:"price_cents"`
	Status         string            `json:"status"`
	IsMultiService bool              `json:"is_multi_service"`
	Note           *string           `json:"note,omitempty"`
	CanceledAt     *time.Time        `json:"canceled_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	Services       []BookingItemView `json:"services,omitempty"`
}

type BookingItemView struct {
	ServiceID   uuid.UUID `json:"service_id"`
	StaffID     uuid.UUID `json:"staff_id"`
	Sequence    int       `json:"sequence"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	DurationMin int       `json:"duration_min"`
	PriceCents  int64     `json:"price_cents"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	SalonID    uuid.UUID `json:"salon_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	PriceCents int64     `json:"price_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// SlotView is one advisory start-time candidate. Unavailable slots are
// reported so a UI can render "taken" differently from "closed".
type SlotView struct {
	Time      time.Time `json:"time"`
	Available bool      `json:"available"`
}

// ConflictDetail names one blocking commitment found by an
// availability check, without exposing whose booking it is.
type ConflictDetail struct {
	StaffID   uuid.UUID `json:"staff_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// AvailabilityReport is the advisory answer to "could this booking be
// placed right now". The write path re-checks under locks regardless.
type AvailabilityReport struct {
	Available bool             `json:"available"`
	Reason    string           `json:"reason,omitempty"`
	Conflicts []ConflictDetail `json:"conflicts,omitempty"`
}

const (
	ReasonSalonClosed   = "SALON_CLOSED"
	ReasonOutsideHours  = "OUTSIDE_WORKING_HOURS"
	ReasonStaffAbsent   = "STAFF_ABSENT"
	ReasonStaffConflict = "STAFF_CONFLICT"
)
