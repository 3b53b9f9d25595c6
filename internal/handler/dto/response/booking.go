package response

import (
	"time"

	"salon-scheduler/internal/usecase/commands"
	"salon-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	Status        string     `json:"status"`
	StaffID       *uuid.UUID `json:"staffId,omitempty"`
	StartTime     time.Time  `json:"startTime"`
	EndTime       time.Time  `json:"endTime"`
	PriceCents    int64      `json:"priceCents"`
	HoldExpiresAt *time.Time `json:"holdExpiresAt,omitempty"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	resp := &CreateBookingResponse{
		ID:            r.BookingID,
		Status:        r.Status.String(),
		StartTime:     r.Span.Start(),
		EndTime:       r.Span.End(),
		PriceCents:    r.PriceCents,
		HoldExpiresAt: r.HoldExpiresAt,
	}
	if r.StaffID != uuid.Nil {
		id := r.StaffID
		resp.StaffID = &id
	}
	return resp
}

type BookingResponse struct {
	ID             uuid.UUID             `json:"id"`
	SalonID        uuid.UUID             `json:"salonId"`
	StaffID        *uuid.UUID            `json:"staffId,omitempty"`
	ServiceID      *uuid.UUID            `json:"serviceId,omitempty"`
	StartTime      time.Time             `json:"startTime"`
	EndTime        time.Time             `json:"endTime"`
	DurationMin    int                   `json:"durationMin"`
	PriceCents     int64                 `json:"priceCents"`
	Status         string                `json:"status"`
	IsMultiService bool                  `json:"isMultiService"`
	Note           *string               `json:"note,omitempty"`
	CanceledAt     *time.Time            `json:"canceledAt,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	Services       []BookingItemResponse `json:"services,omitempty"`
}

type BookingItemResponse struct {
	ServiceID   uuid.UUID `json:"serviceId"`
	StaffID     uuid.UUID `json:"staffId"`
	Sequence    int       `json:"sequence"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	DurationMin int       `json:"durationMin"`
	PriceCents  int64     `json:"priceCents"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{
		ID:             v.ID,
		SalonID:        v.SalonID,
		StaffID:        v.StaffID,
		ServiceID:      v.ServiceID,
		StartTime:      v.StartTime,
		EndTime:        v.EndTime,
		DurationMin:    v.DurationMin,
		PriceCents:     v.PriceCents,
		Status:         v.Status,
		IsMultiService: v.IsMultiService,
		Note:           v.Note,
		CanceledAt:     v.CanceledAt,
		CreatedAt:      v.CreatedAt,
	}
	for _, item := range v.Services {
		resp.Services = append(resp.Services, BookingItemResponse{
			ServiceID:   item.ServiceID,
			StaffID:     item.StaffID,
			Sequence:    item.Sequence,
			StartTime:   item.StartTime,
			EndTime:     item.EndTime,
			DurationMin: item.DurationMin,
			PriceCents:  item.PriceCents,
		})
	}
	return resp
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	SalonID    uuid.UUID `json:"salonId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	PriceCents int64     `json:"priceCents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:         item.ID,
		SalonID:    item.SalonID,
		StartTime:  item.StartTime,
		EndTime:    item.EndTime,
		PriceCents: item.PriceCents,
		Status:     item.Status,
		CreatedAt:  item.CreatedAt,
	}
}

type SlotResponse struct {
	Time      time.Time `json:"time"`
	Available bool      `json:"available"`
}

type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromSlots(date string, slots []queries.SlotView) *SlotsResponse {
	resp := &SlotsResponse{Date: date, Slots: make([]SlotResponse, len(slots))}
	for i, s := range slots {
		resp.Slots[i] = SlotResponse{Time: s.Time, Available: s.Available}
	}
	return resp
}

type ConflictResponse struct {
	StaffID   uuid.UUID `json:"staffId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type AvailabilityResponse struct {
	Available bool               `json:"available"`
	Reason    string             `json:"reason,omitempty"`
	Conflicts []ConflictResponse `json:"conflicts,omitempty"`
}

func FromAvailabilityReport(r *queries.AvailabilityReport) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Available: r.Available,
		Reason:    r.Reason,
	}
	for _, c := range r.Conflicts {
		resp.Conflicts = append(resp.Conflicts, ConflictResponse{
			StaffID:   c.StaffID,
			StartTime: c.StartTime,
			EndTime:   c.EndTime,
		})
	}
	return resp
}
