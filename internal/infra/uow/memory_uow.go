package uow

import (
	"context"

	"residencial-admin/internal/infra/memstore"
	"residencial-admin/internal/infra/repository"
	"residencial-admin/internal/usecase/shared"
)

type MemoryUoW struct {
	store *memstore.Store
}

func NewMemoryUoW(store *memstore.Store) shared.UnitOfWork {
	return &MemoryUoW{store: store}
}

// Within commits the working copy only when fn returns nil.
func (u *MemoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.store.Write(ctx, func(st *memstore.State) error {
		return fn(ctx, newMemTx(st))
	})
}

func (u *MemoryUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.store.Read(ctx, func(st memstore.State) error {
		return fn(ctx, newMemTx(&st))
	})
}

type memTx struct {
	reservations *repository.ReservationRepository
	payments     *repository.PaymentRepository
	users        *repository.UserRepository
	fees         *repository.FeeRepository
	accounts     *repository.AccountRepository
}

func newMemTx(st *memstore.State) *memTx {
	return &memTx{
		reservations: repository.NewReservationRepository(st),
		payments:     repository.NewPaymentRepository(st),
		users:        repository.NewUserRepository(st),
		fees:         repository.NewFeeRepository(st),
		accounts:     repository.NewAccountRepository(st),
	}
}

func (t *memTx) Reservations() shared.ReservationRepository { return t.reservations }
func (t *memTx) Payments() shared.PaymentRepository         { return t.payments }
func (t *memTx) Users() shared.UserRepository               { return t.users }
func (t *memTx) Fees() shared.FeeRepository                 { return t.fees }
func (t *memTx) Accounts() shared.AccountRepository         { return t.accounts }
