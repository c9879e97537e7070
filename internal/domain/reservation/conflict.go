package reservation

import (
	"fmt"

	"residencial-admin/internal/pkg/civil"
)

// ConflictMode decides when approved bookings on the same day clash.
type ConflictMode string

const (
	// ConflictSameDay flags every approved booking on a date that has two or more of them.
	ConflictSameDay ConflictMode = "same_day"
	// ConflictOverlap flags only bookings whose time ranges intersect.
	ConflictOverlap ConflictMode = "overlap"
)

func ParseConflictMode(s string) (ConflictMode, error) {
	switch m := ConflictMode(s); m {
	case ConflictSameDay, ConflictOverlap:
		return m, nil
	case "":
		return ConflictSameDay, nil
	default:
		return "", fmt.Errorf("unknown conflict mode %q", s)
	}
}

type Detector struct {
	mode ConflictMode
}

func NewDetector(mode ConflictMode) *Detector {
	if mode == "" {
		mode = ConflictSameDay
	}
	return &Detector{mode: mode}
}

func (d *Detector) Mode() ConflictMode {
	return d.mode
}

// ReservationsOnDate returns the approved reservations on date in input order.
func (d *Detector) ReservationsOnDate(all []Reservation, date civil.Date) []Reservation {
	out := []Reservation{}
	for _, r := range all {
		if r.Status == StatusApproved && r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// ConflictsOnDate returns the clashing approved reservations on date, or an empty slice.
func (d *Detector) ConflictsOnDate(all []Reservation, date civil.Date) []Reservation {
	onDate := d.ReservationsOnDate(all, date)
	if len(onDate) < 2 {
		return []Reservation{}
	}
	if d.mode != ConflictOverlap {
		return onDate
	}

	out := []Reservation{}
	for i, r := range onDate {
		for j, o := range onDate {
			if i != j && rangesClash(r.Time, o.Time) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// a missing range cannot be checked, so it clashes with everything.
func rangesClash(a, b TimeRange) bool {
	if a.IsZero() || b.IsZero() {
		return true
	}
	return a.Overlaps(b)
}
