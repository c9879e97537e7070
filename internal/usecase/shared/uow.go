package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/domain/fee"
	"residencial-admin/internal/domain/payment"
	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/domain/user"
)

type UnitOfWork interface {
	// Within: all-or-nothing write over every collection
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot; writes made through tx are discarded
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Payments() PaymentRepository
	Users() UserRepository
	Fees() FeeRepository
	Accounts() AccountRepository
}

type ReservationRepository interface {
	List(ctx context.Context) ([]reservation.Reservation, error)
	FindByID(ctx context.Context, id string) (*reservation.Reservation, error)
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
}

type PaymentRepository interface {
	// List returns newest first.
	List(ctx context.Context) ([]payment.Payment, error)
	FindByID(ctx context.Context, id string) (*payment.Payment, error)
	Create(ctx context.Context, p *payment.Payment) error
	Update(ctx context.Context, p *payment.Payment) error
}

type UserRepository interface {
	List(ctx context.Context) ([]user.User, error)
	FindByApartment(ctx context.Context, apartment string) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
}

type FeeRepository interface {
	List(ctx context.Context) ([]fee.Fee, error)
	FindByID(ctx context.Context, id string) (*fee.Fee, error)
	Create(ctx context.Context, f *fee.Fee) error
	Update(ctx context.Context, f *fee.Fee) error
}

type AccountRepository interface {
	FindByUsername(ctx context.Context, username string) (*auth.Account, error)
}
