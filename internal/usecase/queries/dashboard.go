package queries

//go:generate mockgen -source=dashboard.go -destination=../../../tests/mock/queries/dashboard_mock.go -package=queriesmock

import (
	"context"
	"slices"
	"strings"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/domain/payment"
	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/domain/user"
	"residencial-admin/internal/pkg/civil"
	"residencial-admin/internal/pkg/money"
	"residencial-admin/internal/usecase/shared"
)

const (
	recentPaymentsLimit   = 4
	openReservationsLimit = 5
)

type AdminDashboard struct {
	ActiveOwners        int                       `json:"activeOwners"`
	TotalCollected      string                    `json:"totalCollected"`
	PendingReservations int                       `json:"pendingReservations"`
	UnpaidFines         int                       `json:"unpaidFines"`
	RecentPayments      []payment.Payment         `json:"recentPayments"`
	OpenReservations    []reservation.Reservation `json:"openReservations"`
}

type OwnerDashboard struct {
	Balance         string                    `json:"balance"`
	UpToDate        bool                      `json:"upToDate"`
	RecentPayments  []payment.Payment         `json:"recentPayments"`
	PendingPayments []payment.Payment         `json:"pendingPayments"`
	Reservations    []reservation.Reservation `json:"reservations"`
}

type DashboardView struct {
	Role  auth.Role       `json:"role"`
	Admin *AdminDashboard `json:"admin,omitempty"`
	Owner *OwnerDashboard `json:"owner,omitempty"`
}

type DashboardQueries interface {
	Get(ctx context.Context, actor auth.Identity) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewDashboardQueries(uow shared.UnitOfWork) DashboardQueries {
	return &dashboardQueriesImpl{uow: uow}
}

type dashboardData struct {
	payments     []payment.Payment
	users        []user.User
	reservations []reservation.Reservation
}

func (q *dashboardQueriesImpl) Get(ctx context.Context, actor auth.Identity) (*DashboardView, error) {
	var data dashboardData
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if data.payments, err = tx.Payments().List(ctx); err != nil {
			return err
		}
		if data.users, err = tx.Users().List(ctx); err != nil {
			return err
		}
		data.reservations, err = tx.Reservations().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	view := &DashboardView{Role: actor.Role}
	if actor.IsAdmin() {
		view.Admin = adminDashboard(data)
	} else {
		view.Owner = ownerDashboard(data, actor)
	}
	return view, nil
}

func adminDashboard(data dashboardData) *AdminDashboard {
	d := &AdminDashboard{
		TotalCollected:   money.Zero,
		RecentPayments:   data.payments[:min(recentPaymentsLimit, len(data.payments))],
		OpenReservations: []reservation.Reservation{},
	}

	for _, u := range data.users {
		if u.IsActive() {
			d.ActiveOwners++
		}
	}

	collected := money.FromInt(0)
	for _, p := range data.payments {
		switch {
		case p.Status == payment.StatusPaid:
			if a, err := money.Parse(p.Amount); err == nil {
				collected = collected.Add(a)
			}
		case strings.Contains(strings.ToLower(p.Concept), "multa"):
			d.UnpaidFines++
		}
	}
	d.TotalCollected = collected.String()

	open := []reservation.Reservation{}
	for _, r := range data.reservations {
		switch r.Status {
		case reservation.StatusPending:
			d.PendingReservations++
			open = append(open, r)
		case reservation.StatusApproved:
			open = append(open, r)
		}
	}
	slices.SortStableFunc(open, func(a, b reservation.Reservation) int {
		return compareDates(a.Date, b.Date)
	})
	d.OpenReservations = open[:min(openReservationsLimit, len(open))]
	return d
}

func ownerDashboard(data dashboardData, actor auth.Identity) *OwnerDashboard {
	d := &OwnerDashboard{
		Balance:         money.Zero,
		PendingPayments: []payment.Payment{},
		Reservations:    []reservation.Reservation{},
	}

	for _, u := range data.users {
		if u.Apartment == actor.Apartment {
			d.Balance = u.Balance
			break
		}
	}

	paid := []payment.Payment{}
	for _, p := range data.payments {
		if p.Owner != actor.Name {
			continue
		}
		if p.Status == payment.StatusPaid {
			paid = append(paid, p)
		} else {
			d.PendingPayments = append(d.PendingPayments, p)
		}
	}
	d.RecentPayments = paid[:min(recentPaymentsLimit, len(paid))]
	d.UpToDate = d.Balance == money.Zero && len(d.PendingPayments) == 0

	for _, r := range data.reservations {
		if r.Apartment == actor.Apartment {
			d.Reservations = append(d.Reservations, r)
		}
	}
	return d
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}
