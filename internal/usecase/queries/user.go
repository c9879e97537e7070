package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock

import (
	"context"

	"residencial-admin/internal/domain/user"
	"residencial-admin/internal/usecase/shared"
)

type UserQueries interface {
	Search(ctx context.Context, query string) ([]user.User, error)
}

type userQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUserQueries(uow shared.UnitOfWork) UserQueries {
	return &userQueriesImpl{uow: uow}
}

func (q *userQueriesImpl) Search(ctx context.Context, query string) ([]user.User, error) {
	var all []user.User
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		list, err := tx.Users().List(ctx)
		all = list
		return err
	})
	if err != nil {
		return nil, err
	}

	out := []user.User{}
	for _, u := range all {
		if u.Matches(query) {
			out = append(out, u)
		}
	}
	return out, nil
}
