package report

import (
	"fmt"
	"slices"

	"residencial-admin/internal/domain/payment"
	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/domain/user"
	"residencial-admin/internal/pkg/clock"
)

const DefaultBuilding = "Torres del Valle"

// Aggregator turns a record collection into a titled report with status counts.
type Aggregator struct {
	clock    clock.Clock
	building string
}

func NewAggregator(clk clock.Clock, building string) *Aggregator {
	if building == "" {
		building = DefaultBuilding
	}
	return &Aggregator{clock: clk, building: building}
}

func (a *Aggregator) Building() string {
	return a.building
}

func (a *Aggregator) Title(kind Kind) string {
	return fmt.Sprintf("Reporte de %s - %s", kind.Label(), a.building)
}

func (a *Aggregator) Aggregate(c Collection) Report {
	var (
		summary Summary
		detail  Collection
	)

	switch records := c.(type) {
	case Payments:
		summary = Summary{
			{"totalPayments", len(records)},
			{"totalPaid", countWhere(records, func(p payment.Payment) bool { return p.Status == payment.StatusPaid })},
			{"totalPending", countWhere(records, func(p payment.Payment) bool { return p.Status == payment.StatusPending })},
			{"totalOverdue", countWhere(records, func(p payment.Payment) bool { return p.Status == payment.StatusOverdue })},
		}
		detail = slices.Clone(records)
	case Users:
		summary = Summary{
			{"totalUsers", len(records)},
			{"activeUsers", countWhere(records, func(u user.User) bool { return u.IsActive() })},
			{"usersWithDebt", countWhere(records, func(u user.User) bool { return u.HasDebt() })},
		}
		detail = slices.Clone(records)
	case Reservations:
		summary = Summary{
			{"totalReservations", len(records)},
			{"approved", countWhere(records, func(r reservation.Reservation) bool { return r.Status == reservation.StatusApproved })},
			{"pending", countWhere(records, func(r reservation.Reservation) bool { return r.Status == reservation.StatusPending })},
			{"completed", countWhere(records, func(r reservation.Reservation) bool { return r.Status == reservation.StatusCompleted })},
		}
		detail = slices.Clone(records)
	default:
		panic(fmt.Sprintf("report: unsupported collection %T", c))
	}

	return Report{
		Title:       a.Title(c.Kind()),
		GeneratedAt: clock.Today(a.clock),
		Summary:     summary,
		Detail:      detail,
	}
}

func countWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}
