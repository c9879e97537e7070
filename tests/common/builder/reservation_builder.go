//go:build unit || e2e

package builder

import (
	"residencial-admin/internal/domain/reservation"
	reqdto "residencial-admin/internal/handler/dto/request"
	"residencial-admin/internal/pkg/civil"
)

type ReservationBuilder struct {
	ID        string
	Date      string
	StartTime string
	EndTime   string
	Apartment string
	Owner     string
	Event     string
	Status    reservation.Status
	Attendees int
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        "r-1",
		Date:      "2026-11-14",
		StartTime: "18:00",
		EndTime:   "22:00",
		Apartment: "Torre A - 301",
		Owner:     "María González",
		Event:     "Cumpleaños",
		Status:    reservation.StatusPending,
		Attendees: 25,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() reservation.Reservation {
	return reservation.Reservation{
		ID:        r.ID,
		Date:      civil.MustParse(r.Date),
		Time:      reservation.MustParseTimeRange(r.StartTime + " - " + r.EndTime),
		Apartment: r.Apartment,
		Owner:     r.Owner,
		Event:     r.Event,
		Status:    r.Status,
		Attendees: r.Attendees,
	}
}

func (r *ReservationBuilder) BuildRequest() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Event:     r.Event,
		Attendees: r.Attendees,
	}
}

// Fluent builder methods
func (r *ReservationBuilder) WithID(id string) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	r.Date = date
	return r
}

func (r *ReservationBuilder) WithTime(start, end string) *ReservationBuilder {
	r.StartTime = start
	r.EndTime = end
	return r
}

func (r *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	r.Status = status
	return r
}
