package commands

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"residencial-admin/internal/domain/payment"
	reqdto "residencial-admin/internal/handler/dto/request"
	"residencial-admin/internal/observability/metrics"
	"residencial-admin/internal/pkg/civil"
	"residencial-admin/internal/pkg/clock"
	"residencial-admin/internal/pkg/errs"
	"residencial-admin/internal/usecase/shared"
)

type PaymentCommands interface {
	Register(ctx context.Context, req reqdto.CreatePaymentRequest) (*payment.Payment, error)
	CreateCharge(ctx context.Context, req reqdto.CreateChargeRequest) (*payment.Payment, error)
	UpdateStatus(ctx context.Context, id string, status string) (*payment.Payment, error)
}

type paymentCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewPaymentCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *paymentCommandsImpl) Register(ctx context.Context, req reqdto.CreatePaymentRequest) (*payment.Payment, error) {
	in, err := req.ToDomain(clock.Today(uc.clock))
	if err != nil {
		return nil, validation(err)
	}
	p, err := payment.NewPayment(in)
	if err != nil {
		return nil, validation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Payments().Create(ctx, p)
	})
	if err != nil {
		return nil, errs.Wrap(err, "register payment")
	}

	uc.logger.InfoContext(ctx, "payment registered", "payment_id", p.ID, "apartment", p.Apartment, "amount", p.Amount)
	return p, nil
}

// CreateCharge bills an apartment; the owner name comes from the resident directory when known.
func (uc *paymentCommandsImpl) CreateCharge(ctx context.Context, req reqdto.CreateChargeRequest) (*payment.Payment, error) {
	in := payment.ChargeInput{
		Apartment: req.Apartment,
		Concept:   req.Concept,
		Amount:    req.Amount,
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := civil.Parse(*req.DueDate)
		if err != nil {
			return nil, validation(err)
		}
		in.DueDate = due
	}

	var charge *payment.Payment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resident, err := tx.Users().FindByApartment(ctx, req.Apartment)
		switch {
		case err == nil:
			in.Owner = resident.Name
		case errs.Is(err, errs.ErrNotFound):
			uc.logger.WarnContext(ctx, "charge for apartment without resident", "apartment", req.Apartment)
		default:
			return err
		}

		p, err := payment.NewCharge(clock.Today(uc.clock), in)
		if err != nil {
			return validation(err)
		}
		if err := tx.Payments().Create(ctx, p); err != nil {
			return err
		}
		charge = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "charge created", "payment_id", charge.ID, "apartment", charge.Apartment, "amount", charge.Amount)
	return charge, nil
}

func (uc *paymentCommandsImpl) UpdateStatus(ctx context.Context, id string, status string) (*payment.Payment, error) {
	next, err := payment.ParseStatus(status)
	if err != nil {
		return nil, validation(err)
	}

	var updated *payment.Payment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Payments().FindByID(ctx, id)
		if err != nil {
			return notFound(err, errs.ErrPaymentNotFound)
		}
		if err := p.UpdateStatus(next); err != nil {
			return validation(err)
		}
		if err := tx.Payments().Update(ctx, p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveStatusTransition("payment", string(next))
	return updated, nil
}
