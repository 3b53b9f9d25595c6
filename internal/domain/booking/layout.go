package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoServices      = errors.New("at least one service is required")
	ErrInvalidDuration = errors.New("service duration must be positive")
)

// Buffers holds the per-salon padding applied around every booking:
// preparation time before the service, cleanup after, and processing
// time between sequential services.
type Buffers struct {
	Before     time.Duration
	After      time.Duration
	Processing time.Duration
}

// TotalFor is the full schedule footprint of a single service booked
// with these buffers.
func (b Buffers) TotalFor(serviceDuration time.Duration) time.Duration {
	return b.Before + serviceDuration + b.Processing + b.After
}

// ServiceSpec is one service to lay out, already resolved to a concrete
// staff member.
type ServiceSpec struct {
	ServiceID  uuid.UUID
	StaffID    uuid.UUID
	Duration   time.Duration
	PriceCents int64
}

// LineItem is one scheduled segment of a session.
type LineItem struct {
	ServiceID  uuid.UUID
	StaffID    uuid.UUID
	Sequence   int // 1-based execution order
	Interval   TimeInterval
	Duration   time.Duration
	PriceCents int64
}

// SessionLayout is the absolute, buffer-inclusive placement of a
// booking request on the calendar.
type SessionLayout struct {
	Span       TimeInterval
	Items      []LineItem
	PriceCents int64
}

// LayoutSingle places one service at the requested start. The stored
// interval absorbs the before-buffer ahead of the requested start and
// the processing and after-buffers behind the service.
func LayoutSingle(requestedStart time.Time, buf Buffers, svc ServiceSpec) (SessionLayout, error) {
	if svc.Duration <= 0 {
		return SessionLayout{}, ErrInvalidDuration
	}

	actualStart := requestedStart.Add(-buf.Before)
	actualEnd := actualStart.Add(buf.TotalFor(svc.Duration))
	span, err := NewTimeInterval(actualStart, actualEnd)
	if err != nil {
		return SessionLayout{}, err
	}

	return SessionLayout{
		Span: span,
		Items: []LineItem{{
			ServiceID:  svc.ServiceID,
			StaffID:    svc.StaffID,
			Sequence:   1,
			Interval:   span,
			Duration:   svc.Duration,
			PriceCents: svc.PriceCents,
		}},
		PriceCents: svc.PriceCents,
	}, nil
}

// LayoutSequence places services back to back starting at the requested
// start (shifted by the before-buffer). Every item except the last
// carries the inter-service processing time; the last item carries the
// after-buffer instead. Item i ends exactly where item i+1 starts, so
// the parent span is the contiguous union of all items.
func LayoutSequence(requestedStart time.Time, buf Buffers, svcs []ServiceSpec) (SessionLayout, error) {
	if len(svcs) == 0 {
		return SessionLayout{}, ErrNoServices
	}
	if len(svcs) == 1 {
		return LayoutSingle(requestedStart, buf, svcs[0])
	}

	cursor := requestedStart.Add(-buf.Before)
	items := make([]LineItem, 0, len(svcs))
	var total int64

	for idx, svc := range svcs {
		if svc.Duration <= 0 {
			return SessionLayout{}, ErrInvalidDuration
		}

		length := svc.Duration + buf.Processing
		if idx == len(svcs)-1 {
			length = svc.Duration + buf.After
		}
		if idx == 0 {
			length += buf.Before
		}

		iv, err := NewTimeInterval(cursor, cursor.Add(length))
		if err != nil {
			return SessionLayout{}, err
		}
		items = append(items, LineItem{
			ServiceID:  svc.ServiceID,
			StaffID:    svc.StaffID,
			Sequence:   idx + 1,
			Interval:   iv,
			Duration:   svc.Duration,
			PriceCents: svc.PriceCents,
		})
		total += svc.PriceCents
		cursor = iv.End()
	}

	span := MustInterval(items[0].Interval.Start(), items[len(items)-1].Interval.End())
	return SessionLayout{Span: span, Items: items, PriceCents: total}, nil
}

// InvolvedStaff returns the distinct staff ids of the layout in item
// order.
func (l SessionLayout) InvolvedStaff() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(l.Items))
	out := make([]uuid.UUID, 0, len(l.Items))
	for _, item := range l.Items {
		if _, ok := seen[item.StaffID]; ok {
			continue
		}
		seen[item.StaffID] = struct{}{}
		out = append(out, item.StaffID)
	}
	return out
}

// ItemsFor returns the sub-intervals assigned to one staff member.
func (l SessionLayout) ItemsFor(staffID uuid.UUID) []LineItem {
	var out []LineItem
	for _, item := range l.Items {
		if item.StaffID == staffID {
			out = append(out, item)
		}
	}
	return out
}
