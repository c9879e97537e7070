package commands

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/domain/reservation"
	reqdto "residencial-admin/internal/handler/dto/request"
	"residencial-admin/internal/observability/metrics"
	"residencial-admin/internal/pkg/errs"
	"residencial-admin/internal/usecase/shared"
)

type ApproveResult struct {
	Reservation reservation.Reservation
	// Conflicts are the clashing approved bookings on the same date, the approved one included.
	Conflicts []reservation.Reservation
}

type ReservationCommands interface {
	Request(ctx context.Context, req reqdto.CreateReservationRequest, actor auth.Identity) (*reservation.Reservation, error)
	Approve(ctx context.Context, id string) (*ApproveResult, error)
	Reject(ctx context.Context, id string) (*reservation.Reservation, error)
	Complete(ctx context.Context, id string) (*reservation.Reservation, error)
	Edit(ctx context.Context, id string, req reqdto.UpdateReservationRequest) (*reservation.Reservation, error)
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	factory  *reservation.Factory
	detector *reservation.Detector
	logger   *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	factory *reservation.Factory,
	detector *reservation.Detector,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		factory:  factory,
		detector: detector,
		logger:   logger,
	}
}

func (uc *reservationCommandsImpl) Request(ctx context.Context, req reqdto.CreateReservationRequest, actor auth.Identity) (*reservation.Reservation, error) {
	domainReq, err := req.ToDomain(actor)
	if err != nil {
		return nil, validation(err)
	}
	res, err := uc.factory.CreateReservation(domainReq, actor.IsAdmin())
	if err != nil {
		return nil, validation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, res)
	})
	if err != nil {
		return nil, errs.Wrap(err, "create reservation")
	}

	uc.logger.InfoContext(ctx, "reservation requested",
		"reservation_id", res.ID,
		"apartment", res.Apartment,
		"date", res.Date.String(),
		"status", res.Status)
	return res, nil
}

func (uc *reservationCommandsImpl) Approve(ctx context.Context, id string) (*ApproveResult, error) {
	var result *ApproveResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.transition(ctx, tx, id, reservation.StatusApproved)
		if err != nil {
			return err
		}
		all, err := tx.Reservations().List(ctx)
		if err != nil {
			return err
		}
		result = &ApproveResult{
			Reservation: *res,
			Conflicts:   uc.detector.ConflictsOnDate(all, res.Date),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.Conflicts) > 0 {
		uc.logger.WarnContext(ctx, "approved reservation conflicts with others",
			"reservation_id", id,
			"date", result.Reservation.Date.String(),
			"conflicts", len(result.Conflicts),
			"mode", uc.detector.Mode())
	}
	return result, nil
}

func (uc *reservationCommandsImpl) Reject(ctx context.Context, id string) (*reservation.Reservation, error) {
	return uc.transitionInTx(ctx, id, reservation.StatusRejected)
}

func (uc *reservationCommandsImpl) Complete(ctx context.Context, id string) (*reservation.Reservation, error) {
	return uc.transitionInTx(ctx, id, reservation.StatusCompleted)
}

func (uc *reservationCommandsImpl) Edit(ctx context.Context, id string, req reqdto.UpdateReservationRequest) (*reservation.Reservation, error) {
	var edited *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return notFound(err, errs.ErrReservationNotFound)
		}
		edit, err := req.ToDomain(res.Time)
		if err != nil {
			return validation(err)
		}
		if err := res.ApplyEdit(edit, uc.factory.Policy); err != nil {
			return validation(err)
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}
		edited = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.InfoContext(ctx, "reservation edited", "reservation_id", id)
	return edited, nil
}

func (uc *reservationCommandsImpl) transitionInTx(ctx context.Context, id string, next reservation.Status) (*reservation.Reservation, error) {
	var out *reservation.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.transition(ctx, tx, id, next)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (uc *reservationCommandsImpl) transition(ctx context.Context, tx shared.Tx, id string, next reservation.Status) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, errs.ErrReservationNotFound)
	}
	if err := res.TransitionTo(next); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStatusTransition)
	}
	if err := tx.Reservations().Update(ctx, res); err != nil {
		return nil, err
	}

	metrics.ObserveStatusTransition("reservation", string(next))
	uc.logger.InfoContext(ctx, "reservation status changed", "reservation_id", id, "status", next)
	return res, nil
}
