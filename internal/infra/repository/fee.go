package repository

import (
	"context"
	"slices"

	"residencial-admin/internal/domain/fee"
	"residencial-admin/internal/infra"
	"residencial-admin/internal/infra/memstore"
)

type FeeRepository struct {
	state *memstore.State
}

func NewFeeRepository(state *memstore.State) *FeeRepository {
	return &FeeRepository{state: state}
}

func (r *FeeRepository) List(ctx context.Context) ([]fee.Fee, error) {
	return slices.Clone(r.state.Fees), nil
}

func (r *FeeRepository) FindByID(ctx context.Context, id string) (*fee.Fee, error) {
	i := slices.IndexFunc(r.state.Fees, func(f fee.Fee) bool { return f.ID == id })
	if i < 0 {
		return nil, infra.WrapRepoErr("fee not found", nil, infra.KindNotFound)
	}
	found := r.state.Fees[i]
	return &found, nil
}

func (r *FeeRepository) Create(ctx context.Context, f *fee.Fee) error {
	if slices.ContainsFunc(r.state.Fees, func(e fee.Fee) bool { return e.ID == f.ID }) {
		return infra.WrapRepoErr("fee already exists", nil, infra.KindDuplicateKey)
	}
	r.state.Fees = append(r.state.Fees, *f)
	return nil
}

func (r *FeeRepository) Update(ctx context.Context, f *fee.Fee) error {
	i := slices.IndexFunc(r.state.Fees, func(e fee.Fee) bool { return e.ID == f.ID })
	if i < 0 {
		return infra.WrapRepoErr("fee not found", nil, infra.KindNotFound)
	}
	r.state.Fees[i] = *f
	return nil
}
