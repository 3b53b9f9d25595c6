package schedule

import (
	"time"

	"salon-scheduler/internal/domain/booking"
)

// DayQuery carries everything needed to resolve the open windows of one
// salon day. Staff-specific fields are optional; when StaffHours is nil
// the salon windows are returned as configured.
type DayQuery struct {
	Date       time.Time
	Location   *time.Location
	SalonHours WeeklyHours
	Closed     bool // exceptional closure for this specific date
	StaffHours StaffHours
	Absences   []Absence
}

// ResolveDay produces the ordered open working windows for one date.
// "Closed" and "not configured" both yield an empty result; resolution
// never fails.
func ResolveDay(q DayQuery) []WorkingWindow {
	if q.Closed || q.SalonHours == nil {
		return nil
	}

	loc := q.Location
	if loc == nil {
		loc = q.Date.Location()
	}

	day, ok := q.SalonHours[q.Date.Weekday()]
	if !ok || day.Closed || len(day.Windows) == 0 {
		return nil
	}

	var staffRange *booking.TimeInterval
	if q.StaffHours != nil {
		window, works := q.StaffHours[q.Date.Weekday()]
		if !works || !window.IsValid() {
			return nil
		}
		iv := booking.MustInterval(window.Start.On(q.Date, loc), window.End.On(q.Date, loc))
		staffRange = &iv
	}

	var out []WorkingWindow
	ordinal := 0
	for _, w := range day.Windows {
		if !w.IsValid() {
			continue
		}
		iv, err := booking.NewTimeInterval(w.Start.On(q.Date, loc), w.End.On(q.Date, loc))
		if err != nil {
			continue
		}

		if staffRange != nil {
			clipped, ok := iv.Intersect(*staffRange)
			if !ok {
				continue
			}
			iv = clipped
		}

		for _, piece := range subtractAbsences(iv, q.Absences) {
			out = append(out, WorkingWindow{Ordinal: ordinal, Interval: piece})
			ordinal++
		}
	}
	return out
}

// subtractAbsences removes every approved absence from the window. An
// absence in the middle splits the window in two.
func subtractAbsences(iv booking.TimeInterval, absences []Absence) []booking.TimeInterval {
	pieces := []booking.TimeInterval{iv}
	for _, a := range absences {
		if a.Status != AbsenceApproved {
			continue
		}
		var next []booking.TimeInterval
		for _, p := range pieces {
			next = append(next, p.Subtract(a.Interval)...)
		}
		pieces = next
		if len(pieces) == 0 {
			break
		}
	}
	return pieces
}
