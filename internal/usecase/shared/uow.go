package shared

import (
	"context"
	"time"

	"salon-scheduler/internal/domain/booking"

	"github.com/google/uuid"
)

// UnitOfWork is the concurrency coordinator of the engine. Every
// mutation of shared schedule state runs through it; advisory reads go
// through the read stores, which bind to the pool at construction.
type UnitOfWork interface {
	// WithinSerializable executes fn in a serializable transaction,
	// retrying the whole unit of work on serialization conflicts and
	// deadlocks up to the configured attempt budget. fn must be free of
	// non-transactional side effects: it may run more than once.
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the transactional surface handed to a unit of work. Locks must
// be acquired before any read used for conflict detection.
type Tx interface {
	// AcquireLocks takes transaction-scoped advisory locks for every
	// distinct non-empty key, in lexicographic order. Locks release with
	// the transaction; there is no unlock.
	AcquireLocks(ctx context.Context, keys []string) error
	Bookings() BookingRepository
	Conflicts() ConflictReads
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// Head reconstructs the stored booking, line items included, or
	// returns a NOT_FOUND repository error. Transition rules run on the
	// returned entity; Cancel persists the outcome.
	Head(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID, canceledAt time.Time) error
}

// ConflictReads are the fresh, in-transaction reads backing the
// authoritative conflict checks of the write path. Their SQL filters
// use the same overlap predicate as the in-memory detector.
type ConflictReads interface {
	// ActiveClientBookingAtSalon returns the client's earliest active
	// booking at the salon whose interval has not yet ended, or nil.
	ActiveClientBookingAtSalon(ctx context.Context, clientID, salonID uuid.UUID, now time.Time) (*booking.Commitment, error)
	// ClientOverlapping returns the client's active commitments across
	// all salons that overlap the span.
	ClientOverlapping(ctx context.Context, clientID uuid.UUID, span booking.TimeInterval) ([]booking.Commitment, error)
	// StaffOverlapping returns the staff member's active commitments
	// (bookings and multi-service line items) that overlap the span.
	StaffOverlapping(ctx context.Context, staffID uuid.UUID, span booking.TimeInterval) ([]booking.Commitment, error)
}

// Lock keys name the contended resources of one booking attempt.
// Sorted acquisition across all writers rules out deadlock between
// transactions needing the same resources in different natural orders.

func StaffLockKey(id uuid.UUID) string {
	return "staff:" + id.String()
}

func ClientLockKey(id uuid.UUID) string {
	return "client:" + id.String()
}
