//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/pkg/errs"
	"residencial-admin/internal/pkg/jwt"
	"residencial-admin/internal/pkg/password"
	"residencial-admin/internal/usecase/commands"
	"residencial-admin/tests/common/authtest"
	"residencial-admin/tests/common/builder"
	sharedmock "residencial-admin/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthCommands_Login(t *testing.T) {
	hash, err := password.HashPasswordWithCost("owner123", password.MinCost)
	require.NoError(t, err)
	owner := &auth.Account{Username: "owner1", PasswordHash: hash, Identity: authtest.OwnerIdentity}

	jwtService := jwt.NewService("test-secret", time.Hour, testClock())
	setup := func(t *testing.T) (commands.AuthCommands, *sharedmock.MockAccountRepository) {
		uow, tx, ctrl := newTxMocks(t)
		repo := sharedmock.NewMockAccountRepository(ctrl)
		tx.EXPECT().Accounts().Return(repo).AnyTimes()
		return commands.NewAuthCommands(uow, jwtService, discardLogger), repo
	}

	t.Run("valid credentials issue a token for the identity", func(t *testing.T) {
		cmds, repo := setup(t)
		repo.EXPECT().FindByUsername(gomock.Any(), "owner1").Return(owner, nil)

		res, err := cmds.Login(context.Background(), builder.NewAuthBuilder().AsOwner().BuildDTO())
		require.NoError(t, err)
		assert.Equal(t, authtest.OwnerIdentity, res.Identity)
		assert.Equal(t, time.Hour, res.ExpiresIn)

		claims, err := jwtService.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		identity, err := claims.Identity()
		require.NoError(t, err)
		assert.Equal(t, authtest.OwnerIdentity, identity)
	})

	tests := []struct {
		name    string
		prepare func(repo *sharedmock.MockAccountRepository)
		login   *builder.AuthBuilder
		wantErr error
	}{
		{
			name: "wrong password",
			prepare: func(repo *sharedmock.MockAccountRepository) {
				repo.EXPECT().FindByUsername(gomock.Any(), "owner1").Return(owner, nil)
			},
			login:   builder.NewAuthBuilder().AsOwner().WithPassword("nope"),
			wantErr: commands.ErrInvalidCredentials,
		},
		{
			name: "unknown username answers like a wrong password",
			prepare: func(repo *sharedmock.MockAccountRepository) {
				repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(nil, errs.Wrap(errs.ErrNotFound, "account"))
			},
			login:   builder.NewAuthBuilder(),
			wantErr: commands.ErrInvalidCredentials,
		},
		{
			name:    "blank password is rejected before lookup",
			prepare: func(*sharedmock.MockAccountRepository) {},
			login:   builder.NewAuthBuilder().WithPassword(""),
			wantErr: commands.ErrInvalidCredentials,
		},
		{
			name: "store failure",
			prepare: func(repo *sharedmock.MockAccountRepository) {
				repo.EXPECT().FindByUsername(gomock.Any(), "admin").Return(nil, errs.ErrStoreOperationFailed)
			},
			login:   builder.NewAuthBuilder(),
			wantErr: commands.ErrAuthenticationFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, repo := setup(t)
			tt.prepare(repo)

			res, err := cmds.Login(context.Background(), tt.login.BuildDTO())
			assert.Nil(t, res)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
