package queries

import (
	"context"
	"sort"
	"time"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read-side projections of the master data, kept separate from the
// write-side snapshots.
type SalonInfo struct {
	ID       uuid.UUID
	Location *time.Location
	Buffers  booking.Buffers
	IsActive bool
}

type StaffInfo struct {
	ID       uuid.UUID
	SalonID  uuid.UUID
	Name     string
	IsActive bool
}

type ServiceInfo struct {
	ID         uuid.UUID
	SalonID    uuid.UUID
	Duration   time.Duration
	PriceCents int64
	IsActive   bool
}

type SalonScheduleStore interface {
	Salon(ctx context.Context, id uuid.UUID) (*SalonInfo, error)
	WeeklyHours(ctx context.Context, salonID uuid.UUID) (schedule.WeeklyHours, error)
	IsClosedOn(ctx context.Context, salonID uuid.UUID, date time.Time) (bool, error)
}

type StaffScheduleStore interface {
	Staff(ctx context.Context, id uuid.UUID) (*StaffInfo, error)
	ActiveStaff(ctx context.Context, salonID uuid.UUID) ([]StaffInfo, error)
	WorkingHours(ctx context.Context, staffID uuid.UUID) (schedule.StaffHours, error)
}

type ServiceStore interface {
	Service(ctx context.Context, id uuid.UUID) (*ServiceInfo, error)
}

type AbsenceStore interface {
	ApprovedOverlapping(ctx context.Context, staffID uuid.UUID, from, to time.Time, loc *time.Location) ([]schedule.Absence, error)
}

// BusyStore reads existing commitments outside any transaction. It
// shares its overlap predicate with the authoritative write path.
type BusyStore interface {
	StaffOverlapping(ctx context.Context, staffID uuid.UUID, span booking.TimeInterval) ([]booking.Commitment, error)
}

type GetSlotsInput struct {
	SalonID   uuid.UUID
	ServiceID uuid.UUID
	StaffID   *uuid.UUID // nil means any staff
	Date      time.Time  // calendar date; only its year, month and day are read
}

type CheckAvailabilityInput struct {
	SalonID   uuid.UUID
	ServiceID uuid.UUID
	StaffID   uuid.UUID
	Start     time.Time
	// ExcludeBookingID drops that booking's own commitments from the
	// check, so a reschedule is not blocked by the slot it vacates.
	ExcludeBookingID *uuid.UUID
}

type AvailabilityQueries interface {
	// GetAvailableSlots lists every candidate start time for the date.
	// With no specific staff, a slot is available when at least one
	// active staff member is free.
	GetAvailableSlots(ctx context.Context, input GetSlotsInput) ([]SlotView, error)
	// CheckAvailability answers whether one concrete booking could be
	// placed right now, with the blocking commitments when it could not.
	// The answer is advisory: only the locked write path decides.
	CheckAvailability(ctx context.Context, input CheckAvailabilityInput) (*AvailabilityReport, error)
}

type availabilityQueriesImpl struct {
	salons      SalonScheduleStore
	staff       StaffScheduleStore
	services    ServiceStore
	absences    AbsenceStore
	busy        BusyStore
	granularity time.Duration
}

func NewAvailabilityQueries(
	salons SalonScheduleStore,
	staff StaffScheduleStore,
	services ServiceStore,
	absences AbsenceStore,
	busy BusyStore,
	granularity time.Duration,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		salons:      salons,
		staff:       staff,
		services:    services,
		absences:    absences,
		busy:        busy,
		granularity: granularity,
	}
}

func (q *availabilityQueriesImpl) GetAvailableSlots(ctx context.Context, input GetSlotsInput) ([]SlotView, error) {
	env, err := q.loadDayEnvironment(ctx, input.SalonID, input.ServiceID, input.Date, true)
	if err != nil {
		return nil, err
	}
	if env.closed {
		return []SlotView{}, nil
	}

	candidates, err := q.resolveStaff(ctx, input.SalonID, input.StaffID)
	if err != nil {
		return nil, err
	}

	// Merged by start time: one free staff member makes the slot
	// available.
	merged := make(map[time.Time]bool)
	for _, staff := range candidates {
		slots, err := q.slotsForStaff(ctx, env, staff.ID)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			merged[s.Time] = merged[s.Time] || s.Available
		}
	}

	out := make([]SlotView, 0, len(merged))
	for t, available := range merged {
		out = append(out, SlotView{Time: t, Available: available})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out, nil
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, input CheckAvailabilityInput) (*AvailabilityReport, error) {
	env, err := q.loadDayEnvironment(ctx, input.SalonID, input.ServiceID, input.Start, false)
	if err != nil {
		return nil, err
	}
	if env.closed {
		return &AvailabilityReport{Available: false, Reason: ReasonSalonClosed}, nil
	}

	staff, err := q.staff.Staff(ctx, input.StaffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStaffNotFound
		}
		return nil, errs.Wrap(err, "failed to load staff")
	}
	if staff.SalonID != input.SalonID || !staff.IsActive {
		return nil, errs.ErrStaffNotFound
	}

	layout, err := booking.LayoutSingle(input.Start, env.salon.Buffers, booking.ServiceSpec{
		ServiceID: env.service.ID,
		StaffID:   input.StaffID,
		Duration:  env.service.Duration,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeRange)
	}

	windows, plainWindows, err := q.windowsForStaff(ctx, env, input.StaffID)
	if err != nil {
		return nil, err
	}
	if !containedInAny(layout.Span, windows) {
		reason := ReasonOutsideHours
		if containedInAny(layout.Span, plainWindows) {
			reason = ReasonStaffAbsent
		}
		return &AvailabilityReport{Available: false, Reason: reason}, nil
	}

	busy, err := q.busy.StaffOverlapping(ctx, input.StaffID, layout.Span)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read staff commitments")
	}
	if input.ExcludeBookingID != nil {
		busy = withoutBooking(busy, *input.ExcludeBookingID)
	}
	blocking := booking.ConflictsWith(layout.Span, input.StaffID, busy)
	if len(blocking) > 0 {
		report := &AvailabilityReport{Available: false, Reason: ReasonStaffConflict}
		for _, c := range blocking {
			report.Conflicts = append(report.Conflicts, ConflictDetail{
				StaffID:   c.SubjectID,
				StartTime: c.Interval.Start(),
				EndTime:   c.Interval.End(),
			})
		}
		return report, nil
	}

	return &AvailabilityReport{Available: true}, nil
}

// dayEnvironment is the per-request bundle of salon schedule context.
type dayEnvironment struct {
	salon   *SalonInfo
	service *ServiceInfo
	date    time.Time // midnight in the salon's timezone
	hours   schedule.WeeklyHours
	closed  bool
}

// calendarDate callers name the salon-local day by its Y/M/D fields;
// instant callers pass a point in time that is first converted into the
// salon's timezone. Mixing the two up shifts west-of-UTC salons onto
// the previous weekday.
func (q *availabilityQueriesImpl) loadDayEnvironment(ctx context.Context, salonID, serviceID uuid.UUID, day time.Time, calendarDate bool) (*dayEnvironment, error) {
	salon, err := q.salons.Salon(ctx, salonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSalonNotFound
		}
		return nil, errs.Wrap(err, "failed to load salon")
	}
	if !salon.IsActive {
		return nil, errs.ErrSalonNotFound
	}

	svc, err := q.services.Service(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Wrap(err, "failed to load service")
	}
	if svc.SalonID != salonID {
		return nil, errs.ErrServiceNotFound
	}
	if !svc.IsActive {
		return nil, errs.ErrServiceInactive
	}

	var date time.Time
	if calendarDate {
		y, m, d := day.Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, salon.Location)
	} else {
		local := day.In(salon.Location)
		date = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, salon.Location)
	}

	closed, err := q.salons.IsClosedOn(ctx, salonID, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check closure")
	}

	hours, err := q.salons.WeeklyHours(ctx, salonID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load salon hours")
	}

	return &dayEnvironment{
		salon:   salon,
		service: svc,
		date:    date,
		hours:   hours,
		closed:  closed,
	}, nil
}

func (q *availabilityQueriesImpl) resolveStaff(ctx context.Context, salonID uuid.UUID, staffID *uuid.UUID) ([]StaffInfo, error) {
	if staffID != nil {
		staff, err := q.staff.Staff(ctx, *staffID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrStaffNotFound
			}
			return nil, errs.Wrap(err, "failed to load staff")
		}
		if staff.SalonID != salonID || !staff.IsActive {
			return nil, errs.ErrStaffNotFound
		}
		return []StaffInfo{*staff}, nil
	}

	all, err := q.staff.ActiveStaff(ctx, salonID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list staff")
	}
	return all, nil
}

// windowsForStaff resolves the staff member's working windows for the
// day twice: with and without absences, so callers can tell an absence
// apart from ordinary off-hours.
func (q *availabilityQueriesImpl) windowsForStaff(ctx context.Context, env *dayEnvironment, staffID uuid.UUID) (with, without []schedule.WorkingWindow, err error) {
	staffHours, err := q.staff.WorkingHours(ctx, staffID)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to load staff hours")
	}

	dayEnd := env.date.AddDate(0, 0, 1)
	absences, err := q.absences.ApprovedOverlapping(ctx, staffID, env.date, dayEnd, env.salon.Location)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to load absences")
	}

	base := schedule.DayQuery{
		Date:       env.date,
		Location:   env.salon.Location,
		SalonHours: env.hours,
		Closed:     env.closed,
		StaffHours: staffHours,
	}
	without = schedule.ResolveDay(base)

	base.Absences = absences
	with = schedule.ResolveDay(base)
	return with, without, nil
}

func (q *availabilityQueriesImpl) slotsForStaff(ctx context.Context, env *dayEnvironment, staffID uuid.UUID) ([]schedule.Slot, error) {
	windows, _, err := q.windowsForStaff(ctx, env, staffID)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, nil
	}

	span := booking.MustInterval(env.date, env.date.AddDate(0, 0, 1))
	busy, err := q.busy.StaffOverlapping(ctx, staffID, span)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read staff commitments")
	}

	return schedule.Candidates(windows, env.service.Duration, env.salon.Buffers, busy, staffID, q.granularity), nil
}

func withoutBooking(commitments []booking.Commitment, id uuid.UUID) []booking.Commitment {
	out := make([]booking.Commitment, 0, len(commitments))
	for _, c := range commitments {
		if c.BookingID != id {
			out = append(out, c)
		}
	}
	return out
}

func containedInAny(span booking.TimeInterval, windows []schedule.WorkingWindow) bool {
	for _, w := range windows {
		if !span.Start().Before(w.Interval.Start()) && !span.End().After(w.Interval.End()) {
			return true
		}
	}
	return false
}
