package reservation

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeRange is the "HH:MM - HH:MM" slot of a booking, kept as minutes since midnight.
type TimeRange struct {
	start int
	end   int
}

func NewTimeRange(start, end string) (TimeRange, error) {
	s, err := parseClock(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := parseClock(end)
	if err != nil {
		return TimeRange{}, err
	}
	if s >= e {
		return TimeRange{}, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, start, end)
	}
	return TimeRange{start: s, end: e}, nil
}

func ParseTimeRange(s string) (TimeRange, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrInvalidTimeRange, s)
	}
	return NewTimeRange(strings.TrimSpace(start), strings.TrimSpace(end))
}

func MustParseTimeRange(s string) TimeRange {
	r, err := ParseTimeRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || len(hh) == 0 || len(hh) > 2 {
		return 0, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidTimeRange, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: bad hour in %q", ErrInvalidTimeRange, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: bad minute in %q", ErrInvalidTimeRange, s)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func (r TimeRange) Start() string { return formatClock(r.start) }
func (r TimeRange) End() string   { return formatClock(r.end) }

func (r TimeRange) IsZero() bool {
	return r.start == 0 && r.end == 0
}

func (r TimeRange) String() string {
	if r.IsZero() {
		return ""
	}
	return r.Start() + " - " + r.End()
}

// Overlaps uses half-open intervals: 18:00-20:00 and 20:00-22:00 do not overlap.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.start < o.end && o.start < r.end
}

func (r TimeRange) Contains(o TimeRange) bool {
	return r.start <= o.start && o.end <= r.end
}

func (r TimeRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *TimeRange) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*r = TimeRange{}
		return nil
	}
	parsed, err := ParseTimeRange(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// HallPolicy holds the social hall rules checked when a booking is requested or edited.
type HallPolicy struct {
	Capacity int
	Hours    TimeRange
}

func NewHallPolicy(capacity int, opens, closes string) (HallPolicy, error) {
	if capacity <= 0 {
		return HallPolicy{}, fmt.Errorf("%w: capacity must be positive", ErrInvalidAttendees)
	}
	hours, err := NewTimeRange(opens, closes)
	if err != nil {
		return HallPolicy{}, err
	}
	return HallPolicy{Capacity: capacity, Hours: hours}, nil
}

func DefaultHallPolicy() HallPolicy {
	return HallPolicy{Capacity: 50, Hours: TimeRange{start: 8 * 60, end: 23 * 60}}
}

func (p HallPolicy) Validate(slot TimeRange, attendees int) error {
	if slot.IsZero() {
		return ErrInvalidTimeRange
	}
	if !p.Hours.IsZero() && !p.Hours.Contains(slot) {
		return fmt.Errorf("%w: %s is outside %s", ErrOutsideHallHours, slot, p.Hours)
	}
	if attendees < 0 || (p.Capacity > 0 && attendees > p.Capacity) {
		return fmt.Errorf("%w: %d (capacity %d)", ErrInvalidAttendees, attendees, p.Capacity)
	}
	return nil
}
