package repository

import (
	"context"

	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/infra"
	"residencial-admin/internal/infra/memstore"
)

type ReservationRepository struct {
	state *memstore.State
}

func NewReservationRepository(state *memstore.State) *ReservationRepository {
	return &ReservationRepository{state: state}
}

func (r *ReservationRepository) List(ctx context.Context) ([]reservation.Reservation, error) {
	out := make([]reservation.Reservation, len(r.state.Reservations))
	copy(out, r.state.Reservations)
	return out, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	found := r.state.Reservations[i]
	return &found, nil
}

// Create appends, matching the order bookings were requested in.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	if r.indexOf(res.ID) >= 0 {
		return infra.WrapRepoErr("reservation already exists", nil, infra.KindDuplicateKey)
	}
	r.state.Reservations = append(r.state.Reservations, *res)
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	i := r.indexOf(res.ID)
	if i < 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.state.Reservations[i] = *res
	return nil
}

func (r *ReservationRepository) indexOf(id string) int {
	for i := range r.state.Reservations {
		if r.state.Reservations[i].ID == id {
			return i
		}
	}
	return -1
}
