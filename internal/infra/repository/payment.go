package repository

import (
	"context"
	"slices"

	"residencial-admin/internal/domain/payment"
	"residencial-admin/internal/infra"
	"residencial-admin/internal/infra/memstore"
)

type PaymentRepository struct {
	state *memstore.State
}

func NewPaymentRepository(state *memstore.State) *PaymentRepository {
	return &PaymentRepository{state: state}
}

func (r *PaymentRepository) List(ctx context.Context) ([]payment.Payment, error) {
	return slices.Clone(r.state.Payments), nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*payment.Payment, error) {
	i := slices.IndexFunc(r.state.Payments, func(p payment.Payment) bool { return p.ID == id })
	if i < 0 {
		return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	found := r.state.Payments[i]
	return &found, nil
}

// Create prepends so listings stay newest first.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	if slices.ContainsFunc(r.state.Payments, func(e payment.Payment) bool { return e.ID == p.ID }) {
		return infra.WrapRepoErr("payment already exists", nil, infra.KindDuplicateKey)
	}
	r.state.Payments = slices.Insert(r.state.Payments, 0, *p)
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	i := slices.IndexFunc(r.state.Payments, func(e payment.Payment) bool { return e.ID == p.ID })
	if i < 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	r.state.Payments[i] = *p
	return nil
}
