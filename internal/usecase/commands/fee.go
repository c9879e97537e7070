package commands

//go:generate mockgen -source=fee.go -destination=../../../tests/mock/commands/fee_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"residencial-admin/internal/domain/fee"
	reqdto "residencial-admin/internal/handler/dto/request"
	"residencial-admin/internal/pkg/clock"
	"residencial-admin/internal/pkg/errs"
	"residencial-admin/internal/usecase/shared"
)

type FeeCommands interface {
	Create(ctx context.Context, req reqdto.CreateFeeRequest) (*fee.Fee, error)
	SetStatus(ctx context.Context, id string, status string) (*fee.Fee, error)
}

type feeCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewFeeCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) FeeCommands {
	return &feeCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *feeCommandsImpl) Create(ctx context.Context, req reqdto.CreateFeeRequest) (*fee.Fee, error) {
	f, err := fee.NewFee(clock.Today(uc.clock), fee.Type(req.Type), req.Description, req.Amount, fee.Frequency(req.Frequency))
	if err != nil {
		return nil, validation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Fees().Create(ctx, f)
	})
	if err != nil {
		return nil, errs.Wrap(err, "create fee")
	}

	uc.logger.InfoContext(ctx, "fee created", "fee_id", f.ID, "type", f.Type, "amount", f.Amount)
	return f, nil
}

func (uc *feeCommandsImpl) SetStatus(ctx context.Context, id string, status string) (*fee.Fee, error) {
	next, err := fee.ParseStatus(status)
	if err != nil {
		return nil, validation(err)
	}

	var updated *fee.Fee
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := tx.Fees().FindByID(ctx, id)
		if err != nil {
			return notFound(err, errs.ErrFeeNotFound)
		}
		if err := f.SetStatus(next, clock.Today(uc.clock)); err != nil {
			return validation(err)
		}
		if err := tx.Fees().Update(ctx, f); err != nil {
			return err
		}
		updated = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
