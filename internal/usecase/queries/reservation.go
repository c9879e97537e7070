package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

import (
	"context"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/observability/metrics"
	"residencial-admin/internal/pkg/civil"
	"residencial-admin/internal/usecase/shared"
)

type CalendarView struct {
	MarkedDates   []civil.Date             `json:"markedDates"`
	ConflictDates []civil.Date             `json:"conflictDates"`
	Mode          reservation.ConflictMode `json:"conflictMode"`
}

type ReservationQueries interface {
	List(ctx context.Context, actor auth.Identity) ([]reservation.Reservation, error)
	Calendar(ctx context.Context) (*CalendarView, error)
	Day(ctx context.Context, date string) (*reservation.DayView, error)
}

type reservationQueriesImpl struct {
	uow      shared.UnitOfWork
	detector *reservation.Detector
}

func NewReservationQueries(uow shared.UnitOfWork, detector *reservation.Detector) ReservationQueries {
	return &reservationQueriesImpl{uow: uow, detector: detector}
}

// List shows an owner only the bookings of their apartment.
func (q *reservationQueriesImpl) List(ctx context.Context, actor auth.Identity) ([]reservation.Reservation, error) {
	all, err := q.all(ctx)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return all, nil
	}

	own := []reservation.Reservation{}
	for _, r := range all {
		if r.Apartment == actor.Apartment {
			own = append(own, r)
		}
	}
	return own, nil
}

func (q *reservationQueriesImpl) Calendar(ctx context.Context) (*CalendarView, error) {
	all, err := q.all(ctx)
	if err != nil {
		return nil, err
	}

	view := &CalendarView{
		MarkedDates:   q.detector.MarkedDates(all),
		ConflictDates: q.detector.ConflictDates(all),
		Mode:          q.detector.Mode(),
	}
	metrics.SetConflictDates(len(view.ConflictDates))
	return view, nil
}

func (q *reservationQueriesImpl) Day(ctx context.Context, date string) (*reservation.DayView, error) {
	day, err := civil.Parse(date)
	if err != nil {
		return nil, validation(err)
	}
	all, err := q.all(ctx)
	if err != nil {
		return nil, err
	}

	view := q.detector.Day(all, day)
	return &view, nil
}

func (q *reservationQueriesImpl) all(ctx context.Context) ([]reservation.Reservation, error) {
	var all []reservation.Reservation
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		list, err := tx.Reservations().List(ctx)
		all = list
		return err
	})
	return all, err
}
