package queries

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/queries/payment_mock.go -package=queriesmock

import (
	"context"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/domain/payment"
	"residencial-admin/internal/usecase/shared"
)

type PaymentQueries interface {
	List(ctx context.Context) ([]payment.Payment, error)
	ListByOwner(ctx context.Context, actor auth.Identity) ([]payment.Payment, error)
}

type paymentQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentQueries(uow shared.UnitOfWork) PaymentQueries {
	return &paymentQueriesImpl{uow: uow}
}

func (q *paymentQueriesImpl) List(ctx context.Context) ([]payment.Payment, error) {
	var out []payment.Payment
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		list, err := tx.Payments().List(ctx)
		out = list
		return err
	})
	return out, err
}

// ListByOwner matches on the owner name, the way payments are recorded.
func (q *paymentQueriesImpl) ListByOwner(ctx context.Context, actor auth.Identity) ([]payment.Payment, error) {
	all, err := q.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterPayments(all, func(p payment.Payment) bool { return p.Owner == actor.Name }), nil
}

func filterPayments(all []payment.Payment, keep func(payment.Payment) bool) []payment.Payment {
	out := []payment.Payment{}
	for _, p := range all {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
