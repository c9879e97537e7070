package repository

import (
	"context"
	"slices"
	"strings"

	"residencial-admin/internal/domain/user"
	"residencial-admin/internal/infra"
	"residencial-admin/internal/infra/memstore"
)

type UserRepository struct {
	state *memstore.State
}

func NewUserRepository(state *memstore.State) *UserRepository {
	return &UserRepository{state: state}
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	return slices.Clone(r.state.Users), nil
}

func (r *UserRepository) FindByApartment(ctx context.Context, apartment string) (*user.User, error) {
	apartment = strings.TrimSpace(apartment)
	i := slices.IndexFunc(r.state.Users, func(u user.User) bool {
		return strings.EqualFold(u.Apartment, apartment)
	})
	if i < 0 {
		return nil, infra.WrapRepoErr("no resident for apartment "+apartment, nil, infra.KindNotFound)
	}
	found := r.state.Users[i]
	return &found, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if slices.ContainsFunc(r.state.Users, func(e user.User) bool { return e.ID == u.ID }) {
		return infra.WrapRepoErr("user already exists", nil, infra.KindDuplicateKey)
	}
	r.state.Users = append(r.state.Users, *u)
	return nil
}
