package request

import (
	"strings"
	"time"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateBookingRequest books one service. StaffID omitted means "any
// available staff member".
type CreateBookingRequest struct {
	SalonID   uuid.UUID  `json:"salon_id" binding:"required"`
	ServiceID uuid.UUID  `json:"service_id" binding:"required"`
	StaffID   *uuid.UUID `json:"staff_id,omitempty"`
	StartTime time.Time  `json:"start_time" binding:"required"`
	Note      *string    `json:"note,omitempty"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	selector := booking.AnyAvailableStaff()
	if r.StaffID != nil {
		selector = booking.SpecificStaff(*r.StaffID)
	}
	return commands.CreateBookingInput{
		SalonID:   r.SalonID,
		ServiceID: r.ServiceID,
		Staff:     selector,
		Start:     r.StartTime,
		Note:      trimmedNote(r.Note),
	}
}

// BookingItemRequest is one leg of a multi-service session. StaffID
// omitted means "any available staff member" for that leg.
type BookingItemRequest struct {
	ServiceID uuid.UUID  `json:"service_id" binding:"required"`
	StaffID   *uuid.UUID `json:"staff_id,omitempty"`
}

type CreateMultiServiceBookingRequest struct {
	SalonID   uuid.UUID            `json:"salon_id" binding:"required"`
	Services  []BookingItemRequest `json:"services" binding:"required,min=2,dive"`
	StartTime time.Time            `json:"start_time" binding:"required"`
	Note      *string              `json:"note,omitempty"`
}

func (r CreateMultiServiceBookingRequest) ToInput() commands.CreateMultiServiceBookingInput {
	items := make([]commands.MultiServiceItemInput, len(r.Services))
	for i, s := range r.Services {
		selector := booking.AnyAvailableStaff()
		if s.StaffID != nil {
			selector = booking.SpecificStaff(*s.StaffID)
		}
		items[i] = commands.MultiServiceItemInput{
			ServiceID: s.ServiceID,
			Staff:     selector,
		}
	}
	return commands.CreateMultiServiceBookingInput{
		SalonID: r.SalonID,
		Items:   items,
		Start:   r.StartTime,
		Note:    trimmedNote(r.Note),
	}
}

func trimmedNote(note *string) string {
	if note == nil {
		return ""
	}
	return strings.TrimSpace(*note)
}
