package reservation

import "residencial-admin/internal/pkg/civil"

// MarkedDates lists each date holding an approved reservation once, in first-seen order.
func (d *Detector) MarkedDates(all []Reservation) []civil.Date {
	seen := make(map[civil.Date]struct{})
	out := []civil.Date{}
	for _, r := range all {
		if r.Status != StatusApproved {
			continue
		}
		if _, ok := seen[r.Date]; ok {
			continue
		}
		seen[r.Date] = struct{}{}
		out = append(out, r.Date)
	}
	return out
}

func (d *Detector) ConflictDates(all []Reservation) []civil.Date {
	out := []civil.Date{}
	for _, date := range d.MarkedDates(all) {
		if len(d.ConflictsOnDate(all, date)) > 0 {
			out = append(out, date)
		}
	}
	return out
}

type DayEntry struct {
	Reservation
	InConflict bool `json:"inConflict"`
}

type DayView struct {
	Date         civil.Date `json:"date"`
	Label        string     `json:"label"`
	HasConflicts bool       `json:"hasConflicts"`
	Reservations []DayEntry `json:"reservations"`
}

// Day builds the selected-day panel of the calendar screen.
func (d *Detector) Day(all []Reservation, date civil.Date) DayView {
	conflicts := d.ConflictsOnDate(all, date)
	clashing := make(map[string]struct{}, len(conflicts))
	for _, r := range conflicts {
		clashing[r.ID] = struct{}{}
	}

	entries := []DayEntry{}
	for _, r := range d.ReservationsOnDate(all, date) {
		_, in := clashing[r.ID]
		entries = append(entries, DayEntry{Reservation: r, InConflict: in})
	}

	return DayView{
		Date:         date,
		Label:        date.LongLabel(),
		HasConflicts: len(conflicts) > 0,
		Reservations: entries,
	}
}
