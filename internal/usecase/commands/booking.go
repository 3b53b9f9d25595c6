package commands

import (
	"context"
	"log/slog"
	"time"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/infra"
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// CreateBookingInput is one single-service booking request. Start is
// the client-facing service start; the stored interval absorbs the
// salon buffers around it.
type CreateBookingInput struct {
	SalonID   uuid.UUID
	ServiceID uuid.UUID
	Staff     booking.StaffSelector
	Start     time.Time
	Note      string
}

// MultiServiceItemInput is one leg of a multi-service session. A leg
// either names its staff member or asks for any available one.
type MultiServiceItemInput struct {
	ServiceID uuid.UUID
	Staff     booking.StaffSelector
}

type CreateMultiServiceBookingInput struct {
	SalonID uuid.UUID
	Items   []MultiServiceItemInput
	Start   time.Time
	Note    string
}

// Principal is the authenticated client on whose behalf a command
// runs.
type Principal struct {
	ClientID uuid.UUID
	Verified bool
}

type CreateBookingResult struct {
	BookingID     uuid.UUID
	Status        booking.Status
	StaffID       uuid.UUID
	Span          booking.TimeInterval
	PriceCents    int64
	HoldExpiresAt *time.Time // set for provisional holds only
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, p Principal, input CreateBookingInput) (*CreateBookingResult, error)
	CreateMultiServiceBooking(ctx context.Context, p Principal, input CreateMultiServiceBookingInput) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, p Principal, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	salonReads   SalonReads
	staffReads   StaffReads
	serviceReads ServiceReads
	clientReads  ClientReads
	notifier     Notifier
	clock        clock.Clock
	holdDuration time.Duration
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	salonReads SalonReads,
	staffReads StaffReads,
	serviceReads ServiceReads,
	clientReads ClientReads,
	notifier Notifier,
	clk clock.Clock,
	holdDuration time.Duration,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		salonReads:   salonReads,
		staffReads:   staffReads,
		serviceReads: serviceReads,
		clientReads:  clientReads,
		notifier:     notifier,
		clock:        clk,
		holdDuration: holdDuration,
	}
}

// CreateBooking runs the full write path: validate master data, lock
// every contended resource, re-check conflicts against fresh
// in-transaction reads, then commit. Everything before the transaction
// is advisory; only the locked re-check decides.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, p Principal, input CreateBookingInput) (*CreateBookingResult, error) {
	now := c.clock.Now()
	if !input.Start.After(now) {
		return nil, errs.ErrInvalidTimeRange
	}

	salon, err := c.loadSalon(ctx, input.SalonID)
	if err != nil {
		return nil, err
	}
	svc, err := c.loadService(ctx, input.SalonID, input.ServiceID)
	if err != nil {
		return nil, err
	}
	client, err := c.clientReads.FindByID(ctx, p.ClientID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load client")
	}

	candidates, err := c.resolveStaffCandidates(ctx, input.SalonID, input.Staff)
	if err != nil {
		return nil, err
	}

	status := booking.StatusConfirmed
	if !p.Verified {
		status = booking.StatusPending
	}

	var created *booking.Booking
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = nil

		keys := []string{shared.ClientLockKey(p.ClientID)}
		for _, s := range candidates {
			keys = append(keys, shared.StaffLockKey(s.ID))
		}
		if err := tx.AcquireLocks(ctx, keys); err != nil {
			return err
		}

		if err := c.checkClientFree(ctx, tx, p.ClientID, input.SalonID, now); err != nil {
			return err
		}

		// First candidate whose schedule is free takes the booking.
		for _, staff := range candidates {
			layout, err := booking.LayoutSingle(input.Start, salon.Buffers, booking.ServiceSpec{
				ServiceID:  svc.ID,
				StaffID:    staff.ID,
				Duration:   svc.Duration,
				PriceCents: svc.PriceCents,
			})
			if err != nil {
				return errs.Mark(err, errs.ErrInvalidTimeRange)
			}

			if err := c.checkClientOverlap(ctx, tx, p.ClientID, layout.Span); err != nil {
				return err
			}

			busy, err := tx.Conflicts().StaffOverlapping(ctx, staff.ID, layout.Span)
			if err != nil {
				return errs.Wrap(err, "failed to read staff commitments")
			}
			if booking.HasConflict(layout.Span, staff.ID, busy) {
				continue
			}

			b := booking.NewFromLayout(input.SalonID, p.ClientID, layout, status, input.Note)
			if err := tx.Bookings().Create(ctx, b); err != nil {
				return errs.Wrap(err, "failed to persist booking")
			}
			created = b
			return nil
		}

		if input.Staff.IsAny() {
			return errs.ErrNoStaffAvailable
		}
		return errs.ErrStaffConflict
	})
	if err != nil {
		return nil, err
	}

	return c.finishCreate(ctx, *client, created)
}

// CreateMultiServiceBooking places back-to-back services, possibly
// across several staff members, as one atomic commitment.
func (c *bookingCommandsImpl) CreateMultiServiceBooking(ctx context.Context, p Principal, input CreateMultiServiceBookingInput) (*CreateBookingResult, error) {
	now := c.clock.Now()
	if !input.Start.After(now) {
		return nil, errs.ErrInvalidTimeRange
	}
	if len(input.Items) == 0 {
		return nil, errs.ErrInvalidTimeRange
	}

	salon, err := c.loadSalon(ctx, input.SalonID)
	if err != nil {
		return nil, err
	}
	client, err := c.clientReads.FindByID(ctx, p.ClientID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load client")
	}

	needAny := false
	specs := make([]booking.ServiceSpec, 0, len(input.Items))
	for _, item := range input.Items {
		svc, err := c.loadService(ctx, input.SalonID, item.ServiceID)
		if err != nil {
			return nil, err
		}
		spec := booking.ServiceSpec{
			ServiceID:  svc.ID,
			Duration:   svc.Duration,
			PriceCents: svc.PriceCents,
		}
		if item.Staff.IsAny() {
			needAny = true
		} else {
			if _, err := c.loadStaff(ctx, input.SalonID, item.Staff.StaffID()); err != nil {
				return nil, err
			}
			spec.StaffID = item.Staff.StaffID()
		}
		specs = append(specs, spec)
	}

	var roster []StaffSnapshot
	if needAny {
		roster, err = c.staffReads.ListActiveBySalon(ctx, input.SalonID)
		if err != nil {
			return nil, errs.Wrap(err, "failed to list staff")
		}
		if len(roster) == 0 {
			return nil, errs.ErrNoStaffAvailable
		}
	}

	// The probe layout fixes each leg's interval before any staff is
	// assigned; assignment never moves an interval.
	probe, err := booking.LayoutSequence(input.Start, salon.Buffers, specs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeRange)
	}

	status := booking.StatusConfirmed
	if !p.Verified {
		status = booking.StatusPending
	}

	var created *booking.Booking
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = nil

		if err := tx.AcquireLocks(ctx, c.multiLockKeys(p.ClientID, input.Items, roster)); err != nil {
			return err
		}

		if err := c.checkClientFree(ctx, tx, p.ClientID, input.SalonID, now); err != nil {
			return err
		}
		if err := c.checkClientOverlap(ctx, tx, p.ClientID, probe.Span); err != nil {
			return err
		}

		resolved, err := c.assignOpenLegs(ctx, tx, specs, probe, input.Items, roster)
		if err != nil {
			return err
		}

		layout, err := booking.LayoutSequence(input.Start, salon.Buffers, resolved)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidTimeRange)
		}

		// Each staff member only blocks on their own segments, not on
		// the whole session span.
		for _, staffID := range layout.InvolvedStaff() {
			busy, err := tx.Conflicts().StaffOverlapping(ctx, staffID, layout.Span)
			if err != nil {
				return errs.Wrap(err, "failed to read staff commitments")
			}
			for _, item := range layout.ItemsFor(staffID) {
				if booking.HasConflict(item.Interval, staffID, busy) {
					return errs.ErrStaffConflict
				}
			}
		}

		b := booking.NewFromLayout(input.SalonID, p.ClientID, layout, status, input.Note)
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return errs.Wrap(err, "failed to persist booking")
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.finishCreate(ctx, *client, created)
}

// multiLockKeys covers every staff member the session could touch:
// named legs plus, when any leg is open, the whole candidate roster.
func (c *bookingCommandsImpl) multiLockKeys(clientID uuid.UUID, items []MultiServiceItemInput, roster []StaffSnapshot) []string {
	keys := []string{shared.ClientLockKey(clientID)}
	seen := make(map[uuid.UUID]struct{})
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		keys = append(keys, shared.StaffLockKey(id))
	}
	for _, item := range items {
		if !item.Staff.IsAny() {
			add(item.Staff.StaffID())
		}
	}
	for _, s := range roster {
		add(s.ID)
	}
	return keys
}

// assignOpenLegs fills each "any available" leg with the first roster
// candidate free during that leg's interval. Named legs pass through
// untouched; the final layout is re-checked as a whole afterwards.
func (c *bookingCommandsImpl) assignOpenLegs(
	ctx context.Context,
	tx shared.Tx,
	specs []booking.ServiceSpec,
	probe booking.SessionLayout,
	items []MultiServiceItemInput,
	roster []StaffSnapshot,
) ([]booking.ServiceSpec, error) {
	resolved := make([]booking.ServiceSpec, len(specs))
	copy(resolved, specs)

	for i, item := range items {
		if !item.Staff.IsAny() {
			continue
		}
		interval := probe.Items[i].Interval

		assigned := false
		for _, cand := range roster {
			busy, err := tx.Conflicts().StaffOverlapping(ctx, cand.ID, interval)
			if err != nil {
				return nil, errs.Wrap(err, "failed to read staff commitments")
			}
			if booking.HasConflict(interval, cand.ID, busy) {
				continue
			}
			resolved[i].StaffID = cand.ID
			assigned = true
			break
		}
		if !assigned {
			return nil, errs.ErrNoStaffAvailable
		}
	}
	return resolved, nil
}

// CancelBooking releases a slot on the client's behalf. Ownership is
// checked first so foreign bookings look like missing ones.
func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, p Principal, bookingID uuid.UUID) error {
	now := c.clock.Now()

	err := c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.AcquireLocks(ctx, []string{shared.ClientLockKey(p.ClientID)}); err != nil {
			return err
		}

		b, err := tx.Bookings().Head(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotFound
			}
			return errs.Wrap(err, "failed to load booking")
		}
		if b.ClientID() != p.ClientID {
			// Foreign bookings are indistinguishable from missing ones.
			return errs.ErrBookingNotFound
		}
		if !b.IsActive() || b.HasEnded(now) {
			return errs.ErrBookingNotCancelable
		}
		if err := b.Cancel(now); err != nil {
			return errs.Mark(err, errs.ErrBookingNotCancelable)
		}

		// Staff locks keep concurrent slot searches from observing the
		// half-released interval.
		keys := make([]string, 0, len(b.Items())+1)
		if id := b.StaffID(); id != nil {
			keys = append(keys, shared.StaffLockKey(*id))
		}
		for _, item := range b.Items() {
			keys = append(keys, shared.StaffLockKey(item.StaffID))
		}
		if err := tx.AcquireLocks(ctx, keys); err != nil {
			return err
		}

		if err := tx.Bookings().Cancel(ctx, bookingID, now); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrBookingNotCancelable
			}
			return errs.Wrap(err, "failed to cancel booking")
		}
		return nil
	})
	if err != nil {
		return err
	}

	if client, cerr := c.clientReads.FindByID(ctx, p.ClientID); cerr == nil {
		if notifyErr := c.notifier.SendBookingCanceled(ctx, *client, bookingID); notifyErr != nil {
			slog.Warn("cancellation notification failed",
				"booking_id", bookingID,
				"error", notifyErr.Error())
		}
	}
	return nil
}

// finishCreate handles post-commit notification. A confirmed booking
// survives a failed notification; a provisional hold does not, because
// the client would never receive the verification request that keeps
// the hold meaningful.
func (c *bookingCommandsImpl) finishCreate(ctx context.Context, client ClientSnapshot, b *booking.Booking) (*CreateBookingResult, error) {
	result := &CreateBookingResult{
		BookingID:  b.ID(),
		Status:     b.Status(),
		Span:       b.Span(),
		PriceCents: b.PriceCents(),
	}
	if id := b.StaffID(); id != nil {
		result.StaffID = *id
	}

	if b.Status() == booking.StatusConfirmed {
		if err := c.notifier.SendBookingConfirmed(ctx, client, b.ID()); err != nil {
			slog.Warn("confirmation notification failed",
				"booking_id", b.ID(),
				"error", err.Error())
		}
		return result, nil
	}

	expiresAt := c.clock.Now().Add(c.holdDuration)
	result.HoldExpiresAt = &expiresAt

	if err := c.notifier.SendVerificationRequest(ctx, client, b.ID(), expiresAt); err != nil {
		slog.Error("verification request failed, releasing hold",
			"booking_id", b.ID(),
			"error", err.Error())
		if cancelErr := c.compensateHold(ctx, b); cancelErr != nil {
			slog.Error("compensating cancellation failed, hold left to the sweep",
				"booking_id", b.ID(),
				"error", cancelErr.Error())
		}
		return nil, errs.Mark(err, errs.ErrNotificationFailed)
	}
	return result, nil
}

func (c *bookingCommandsImpl) compensateHold(ctx context.Context, b *booking.Booking) error {
	return c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.AcquireLocks(ctx, []string{shared.ClientLockKey(b.ClientID())}); err != nil {
			return err
		}
		return tx.Bookings().Cancel(ctx, b.ID(), c.clock.Now())
	})
}

func (c *bookingCommandsImpl) checkClientFree(ctx context.Context, tx shared.Tx, clientID, salonID uuid.UUID, now time.Time) error {
	active, err := tx.Conflicts().ActiveClientBookingAtSalon(ctx, clientID, salonID, now)
	if err != nil {
		return errs.Wrap(err, "failed to read active client booking")
	}
	if active != nil {
		return errs.ErrClientAlreadyBooked
	}
	return nil
}

func (c *bookingCommandsImpl) checkClientOverlap(ctx context.Context, tx shared.Tx, clientID uuid.UUID, span booking.TimeInterval) error {
	busy, err := tx.Conflicts().ClientOverlapping(ctx, clientID, span)
	if err != nil {
		return errs.Wrap(err, "failed to read client commitments")
	}
	if booking.HasConflict(span, clientID, busy) {
		return errs.ErrClientConflict
	}
	return nil
}

func (c *bookingCommandsImpl) loadSalon(ctx context.Context, id uuid.UUID) (*SalonSnapshot, error) {
	salon, err := c.salonReads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSalonNotFound
		}
		return nil, errs.Wrap(err, "failed to load salon")
	}
	if !salon.IsActive {
		return nil, errs.ErrSalonNotFound
	}
	return salon, nil
}

func (c *bookingCommandsImpl) loadService(ctx context.Context, salonID, id uuid.UUID) (*ServiceSnapshot, error) {
	svc, err := c.serviceReads.FindByID(ctx, id)
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
	return svc, nil
}

func (c *bookingCommandsImpl) loadStaff(ctx context.Context, salonID, id uuid.UUID) (*StaffSnapshot, error) {
	staff, err := c.staffReads.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStaffNotFound
		}
		return nil, errs.Wrap(err, "failed to load staff")
	}
	if staff.SalonID != salonID {
		return nil, errs.ErrStaffSalonMismatch
	}
	if !staff.IsActive {
		return nil, errs.ErrStaffInactive
	}
	return staff, nil
}

// resolveStaffCandidates turns the selector into the ordered list of
// staff the transaction will lock and try. A specific selector yields
// exactly one candidate.
func (c *bookingCommandsImpl) resolveStaffCandidates(ctx context.Context, salonID uuid.UUID, sel booking.StaffSelector) ([]StaffSnapshot, error) {
	if !sel.IsAny() {
		staff, err := c.loadStaff(ctx, salonID, sel.StaffID())
		if err != nil {
			return nil, err
		}
		return []StaffSnapshot{*staff}, nil
	}

	all, err := c.staffReads.ListActiveBySalon(ctx, salonID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list staff")
	}
	if len(all) == 0 {
		return nil, errs.ErrNoStaffAvailable
	}
	return all, nil
}
