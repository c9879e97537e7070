package commands

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"residencial-admin/internal/domain/user"
	reqdto "residencial-admin/internal/handler/dto/request"
	"residencial-admin/internal/pkg/errs"
	"residencial-admin/internal/usecase/shared"
)

type UserCommands interface {
	Create(ctx context.Context, req reqdto.CreateUserRequest) (*user.User, error)
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewUserCommands(uow shared.UnitOfWork, logger *slog.Logger) UserCommands {
	return &userCommandsImpl{uow: uow, logger: logger}
}

func (uc *userCommandsImpl) Create(ctx context.Context, req reqdto.CreateUserRequest) (*user.User, error) {
	u, err := user.NewUser(req.ToDomain())
	if err != nil {
		return nil, validation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		return nil, errs.Wrap(err, "create user")
	}

	uc.logger.InfoContext(ctx, "resident registered", "user_id", u.ID, "apartment", u.Apartment)
	return u, nil
}
