package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("interval start must be before end")

// TimeInterval is a half-open time range [start, end). Back-to-back
// intervals touch without overlapping.
type TimeInterval struct {
	start time.Time
	end   time.Time
}

func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if !start.Before(end) {
		return TimeInterval{}, ErrInvalidInterval
	}
	return TimeInterval{start: start, end: end}, nil
}

// MustInterval panics on an invalid range. For fixtures and internal
// construction from already-validated values.
func MustInterval(start, end time.Time) TimeInterval {
	iv, err := NewTimeInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

func (i TimeInterval) Start() time.Time {
	return i.start
}

func (i TimeInterval) End() time.Time {
	return i.end
}

func (i TimeInterval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

func (i TimeInterval) IsZero() bool {
	return i.start.IsZero() && i.end.IsZero()
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching endpoints do not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.start.Before(other.end) && other.start.Before(i.end)
}

func (i TimeInterval) String() string {
	return fmt.Sprintf("[%s, %s)", i.start.Format(time.RFC3339), i.end.Format(time.RFC3339))
}

// OverlapsDecomposed evaluates the three-clause form of the overlap
// predicate: the existing interval covers the query start, covers the
// query end, or lies fully inside the query. It is equivalent to
// Overlaps and mirrors the SQL emitted by OverlapSQL, so the storage
// filter and the in-memory check cannot drift apart.
func OverlapsDecomposed(existing, query TimeInterval) bool {
	coversStart := !existing.start.After(query.start) && existing.end.After(query.start)
	coversEnd := existing.start.Before(query.end) && !existing.end.Before(query.end)
	contained := !existing.start.Before(query.start) && !existing.end.After(query.end)
	return coversStart || coversEnd || contained
}

// OverlapSQL renders the decomposed predicate over the given column
// names with positional placeholders for the query start and end. The
// disjunction lets Postgres use a (subject, start_time) index for each
// branch instead of scanning on a single inequality pair.
func OverlapSQL(startCol, endCol string, startArg, endArg int) string {
	return fmt.Sprintf(
		"((%[1]s <= $%[3]d AND %[2]s > $%[3]d) OR (%[1]s < $%[4]d AND %[2]s >= $%[4]d) OR (%[1]s >= $%[3]d AND %[2]s <= $%[4]d))",
		startCol, endCol, startArg, endArg,
	)
}

// Subtract removes other from i, returning the zero, one, or two
// remaining pieces in chronological order.
func (i TimeInterval) Subtract(other TimeInterval) []TimeInterval {
	if !i.Overlaps(other) {
		return []TimeInterval{i}
	}

	var out []TimeInterval
	if i.start.Before(other.start) {
		out = append(out, TimeInterval{start: i.start, end: other.start})
	}
	if other.end.Before(i.end) {
		out = append(out, TimeInterval{start: other.end, end: i.end})
	}
	return out
}

// Intersect returns the common part of two intervals and whether one
// exists.
func (i TimeInterval) Intersect(other TimeInterval) (TimeInterval, bool) {
	start := i.start
	if other.start.After(start) {
		start = other.start
	}
	end := i.end
	if other.end.Before(end) {
		end = other.end
	}
	if !start.Before(end) {
		return TimeInterval{}, false
	}
	return TimeInterval{start: start, end: end}, true
}
