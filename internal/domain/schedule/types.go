package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"salon-scheduler/internal/domain/booking"
)

var ErrInvalidWallClock = errors.New("invalid wall-clock time")

// WallClock is a time of day without a date, as stored in weekly
// schedule configuration.
type WallClock struct {
	minutes int // from midnight
}

func NewWallClock(hour, minute int) (WallClock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return WallClock{}, ErrInvalidWallClock
	}
	return WallClock{minutes: hour*60 + minute}, nil
}

// ParseWallClock reads "15:04" strings from schedule configuration.
func ParseWallClock(s string) (WallClock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return WallClock{}, fmt.Errorf("%w: %q", ErrInvalidWallClock, s)
	}
	return WallClock{minutes: t.Hour()*60 + t.Minute()}, nil
}

func (w WallClock) Minutes() int { return w.minutes }

// On pins the wall-clock time to a calendar date in the given location.
func (w WallClock) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, w.minutes, 0, 0, loc)
}

func (w WallClock) String() string {
	return fmt.Sprintf("%02d:%02d", w.minutes/60, w.minutes%60)
}

// WallWindow is one open range within a day, wall-clock only.
type WallWindow struct {
	Start WallClock
	End   WallClock
}

func (w WallWindow) IsValid() bool {
	return w.Start.minutes < w.End.minutes
}

// DayHours is a salon's configuration for one weekday: closed outright
// or open for an ordered sequence of windows (morning/afternoon).
type DayHours struct {
	Closed  bool
	Windows []WallWindow
}

// WeeklyHours maps weekdays to their configured hours. A missing day
// counts as closed.
type WeeklyHours map[time.Weekday]DayHours

// StaffHours is a staff member's single working range per weekday. A
// missing day means the staff member does not work that day.
type StaffHours map[time.Weekday]WallWindow

// AbsenceStatus mirrors the approval workflow of staff absences. Only
// approved absences subtract from availability.
type AbsenceStatus string

const (
	AbsencePending  AbsenceStatus = "PENDING"
	AbsenceApproved AbsenceStatus = "APPROVED"
	AbsenceRejected AbsenceStatus = "REJECTED"
)

func (s AbsenceStatus) IsValid() bool {
	switch s {
	case AbsencePending, AbsenceApproved, AbsenceRejected:
		return true
	default:
		return false
	}
}

// Absence is a staff unavailability record over an absolute interval.
type Absence struct {
	StaffID  uuid.UUID
	Interval booking.TimeInterval
	Status   AbsenceStatus
}

// WorkingWindow is a resolved open interval for one specific date. The
// ordinal preserves configuration order when a day has several disjoint
// windows.
type WorkingWindow struct {
	Ordinal  int
	Interval booking.TimeInterval
}

// Slot is one bookable start-time candidate. Unavailable candidates are
// still emitted so callers can tell "taken" apart from "closed".
type Slot struct {
	Time      time.Time
	Available bool
}
