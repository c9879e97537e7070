package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"residencial-admin/internal/domain/auth"
	reqdto "residencial-admin/internal/handler/dto/request"
	"residencial-admin/internal/pkg/errs"
	"residencial-admin/internal/pkg/jwt"
	"residencial-admin/internal/pkg/password"
	"residencial-admin/internal/usecase/shared"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	Identity    auth.Identity
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	var account *auth.Account
	err = a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, ferr := tx.Accounts().FindByUsername(ctx, credentials.Username())
		if ferr != nil {
			return ferr
		}
		account = found
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			// same answer as a wrong password so usernames cannot be probed
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(account.PasswordHash, credentials.Password()); err != nil {
		a.logger.InfoContext(ctx, "login rejected", "username", credentials.Username())
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(account.Identity)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
		Identity:    account.Identity,
	}, nil
}
