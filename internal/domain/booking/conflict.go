package booking

import "github.com/google/uuid"

// Commitment is an already-scheduled interval held by some subject (a
// staff member or a client). It is the minimal projection the conflict
// predicate needs, whether the rows come from bookings or from
// multi-service line items.
type Commitment struct {
	BookingID uuid.UUID
	SubjectID uuid.UUID
	Interval  TimeInterval
	Status    Status
}

// HasConflict reports whether the candidate interval collides with any
// active commitment of the given subject. The same predicate backs the
// advisory read path and, via OverlapSQL, the authoritative write-path
// filter.
func HasConflict(candidate TimeInterval, subjectID uuid.UUID, existing []Commitment) bool {
	return len(ConflictsWith(candidate, subjectID, existing)) > 0
}

// ConflictsWith returns the active commitments of the subject that
// overlap the candidate, in input order, so callers can name the
// blocking interval in an error message.
func ConflictsWith(candidate TimeInterval, subjectID uuid.UUID, existing []Commitment) []Commitment {
	var out []Commitment
	for _, c := range existing {
		if c.SubjectID != subjectID {
			continue
		}
		if !c.Status.IsActive() {
			continue
		}
		if candidate.Overlaps(c.Interval) {
			out = append(out, c)
		}
	}
	return out
}
