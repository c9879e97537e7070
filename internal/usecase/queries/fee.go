package queries

//go:generate mockgen -source=fee.go -destination=../../../tests/mock/queries/fee_mock.go -package=queriesmock

import (
	"context"

	"residencial-admin/internal/domain/fee"
	"residencial-admin/internal/usecase/shared"
)

type FeeQueries interface {
	List(ctx context.Context) ([]fee.Fee, error)
}

type feeQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewFeeQueries(uow shared.UnitOfWork) FeeQueries {
	return &feeQueriesImpl{uow: uow}
}

func (q *feeQueriesImpl) List(ctx context.Context) ([]fee.Fee, error) {
	var out []fee.Fee
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		list, err := tx.Fees().List(ctx)
		out = list
		return err
	})
	return out, err
}
