// Package memstore holds the application state of a running instance. Nothing is persisted.
package memstore

import (
	"context"
	"sync"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/domain/fee"
	"residencial-admin/internal/domain/payment"
	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/domain/user"
	"residencial-admin/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// State is every collection the building admin works with. Slices keep display order.
type State struct {
	Payments     []payment.Payment
	Users        []user.User
	Reservations []reservation.Reservation
	Fees         []fee.Fee
	Accounts     []auth.Account
}

// Clone copies every collection into fresh backing arrays. The records are flat value types,
// so an element-wise copy is a full copy.
func (s State) Clone() (State, error) {
	var out State
	if err := cloneInto(&out.Payments, s.Payments); err != nil {
		return State{}, errs.Wrap(err, "clone payments")
	}
	if err := cloneInto(&out.Users, s.Users); err != nil {
		return State{}, errs.Wrap(err, "clone users")
	}
	if err := cloneInto(&out.Reservations, s.Reservations); err != nil {
		return State{}, errs.Wrap(err, "clone reservations")
	}
	if err := cloneInto(&out.Fees, s.Fees); err != nil {
		return State{}, errs.Wrap(err, "clone fees")
	}
	if err := cloneInto(&out.Accounts, s.Accounts); err != nil {
		return State{}, errs.Wrap(err, "clone accounts")
	}
	return out, nil
}

func cloneInto[T any](dst *[]T, src []T) error {
	*dst = make([]T, 0, len(src))
	if len(src) == 0 {
		return nil
	}
	return copier.Copy(dst, &src)
}

// Store guards State. Writers work on a clone that replaces the state only when they succeed.
type Store struct {
	mu    sync.RWMutex
	state State
}

func New(seed State) *Store {
	return &Store{state: seed}
}

func (s *Store) Read(ctx context.Context, fn func(State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, err := s.state.Clone()
	if err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return fn(snapshot)
}

func (s *Store) Write(ctx context.Context, fn func(*State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	working, err := s.state.Clone()
	if err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if err := fn(&working); err != nil {
		return err
	}
	s.state = working
	return nil
}

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot(ctx context.Context) (State, error) {
	var out State
	err := s.Read(ctx, func(st State) error {
		out = st
		return nil
	})
	return out, err
}
