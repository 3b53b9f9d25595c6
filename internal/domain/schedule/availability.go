package schedule

import (
	"time"

	"github.com/google/uuid"

	"salon-scheduler/internal/domain/booking"
)

// DefaultGranularity is the default step between slot candidates.
const DefaultGranularity = 20 * time.Minute

// Candidates steps through each working window and emits every start
// time whose full buffer-inclusive session still fits inside the
// window. Taken slots are emitted with Available=false; an empty result
// means the day is closed, not that every slot is taken.
//
// The emitted Time is the client-facing service start: the before-
// buffer sits ahead of it inside the window, so booking an available
// candidate commits exactly the interval checked here.
func Candidates(
	windows []WorkingWindow,
	serviceDuration time.Duration,
	buf booking.Buffers,
	busy []booking.Commitment,
	staffID uuid.UUID,
	granularity time.Duration,
) []Slot {
	if granularity <= 0 {
		granularity = DefaultGranularity
	}
	if serviceDuration <= 0 {
		return nil
	}

	footprint := buf.TotalFor(serviceDuration)

	var out []Slot
	for _, w := range windows {
		for cursor := w.Interval.Start(); !cursor.Add(footprint).After(w.Interval.End()); cursor = cursor.Add(granularity) {
			candidate := booking.MustInterval(cursor, cursor.Add(footprint))
			out = append(out, Slot{
				Time:      cursor.Add(buf.Before),
				Available: !booking.HasConflict(candidate, staffID, busy),
			})
		}
	}
	return out
}
