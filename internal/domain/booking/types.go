package booking

import "github.com/google/uuid"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCanceled   Status = "CANCELED"
	StatusNoShow     Status = "NO_SHOW"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCanceled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsActive reports whether a booking in this status still occupies its
// slot. Canceled and no-show bookings release their time.
func (s Status) IsActive() bool {
	switch s {
	case StatusCanceled, StatusNoShow:
		return false
	default:
		return true
	}
}

// ActiveStatuses lists every status that blocks a slot, for storage
// filters.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted}
}

// StaffSelector is either a specific staff member or a request for any
// available one. The zero value is invalid; use SpecificStaff or
// AnyAvailableStaff.
type StaffSelector struct {
	id  uuid.UUID
	any bool
}

func SpecificStaff(id uuid.UUID) StaffSelector {
	return StaffSelector{id: id}
}

func AnyAvailableStaff() StaffSelector {
	return StaffSelector{any: true}
}

func (s StaffSelector) IsAny() bool {
	return s.any
}

// StaffID returns the selected staff id. Valid only when IsAny is
// false.
func (s StaffSelector) StaffID() uuid.UUID {
	return s.id
}
