package repository

import (
	"context"
	"slices"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/infra"
	"residencial-admin/internal/infra/memstore"
)

type AccountRepository struct {
	state *memstore.State
}

func NewAccountRepository(state *memstore.State) *AccountRepository {
	return &AccountRepository{state: state}
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*auth.Account, error) {
	i := slices.IndexFunc(r.state.Accounts, func(a auth.Account) bool { return a.Username == username })
	if i < 0 {
		return nil, infra.WrapRepoErr("account not found", nil, infra.KindNotFound)
	}
	found := r.state.Accounts[i]
	return &found, nil
}
