//go:build unit

package uow_test

import (
	"context"
	"errors"
	"testing"

	"residencial-admin/internal/domain/payment"
	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/infra"
	"residencial-admin/internal/infra/memstore"
	"residencial-admin/internal/infra/uow"
	"residencial-admin/internal/pkg/civil"
	"residencial-admin/internal/pkg/errs"
	"residencial-admin/internal/pkg/password"
	"residencial-admin/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) (shared.UnitOfWork, *memstore.Store) {
	t.Helper()
	seed, err := memstore.Seed(password.MinCost)
	require.NoError(t, err)
	store := memstore.New(seed)
	return uow.NewMemoryUoW(store), store
}

func TestMemoryUoW_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	u, store := newUoW(t)

	t.Run("failed unit leaves state untouched", func(t *testing.T) {
		boom := errors.New("boom")
		err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			r, err := tx.Reservations().FindByID(ctx, "1")
			require.NoError(t, err)
			require.NoError(t, r.Approve())
			require.NoError(t, tx.Reservations().Update(ctx, r))
			return boom
		})
		require.ErrorIs(t, err, boom)

		snap, err := store.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, snap.Reservations[0].Status)
	})

	t.Run("successful unit is committed", func(t *testing.T) {
		err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			r, err := tx.Reservations().FindByID(ctx, "1")
			if err != nil {
				return err
			}
			if err := r.Approve(); err != nil {
				return err
			}
			return tx.Reservations().Update(ctx, r)
		})
		require.NoError(t, err)

		snap, err := store.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusApproved, snap.Reservations[0].Status)
		assert.Equal(t, "18:00 - 22:00", snap.Reservations[0].Time.String())
	})

	t.Run("read only writes are discarded", func(t *testing.T) {
		err := u.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Payments().Create(ctx, &payment.Payment{ID: "99", Date: civil.MustParse("2024-02-01")})
		})
		require.NoError(t, err)

		snap, err := store.Snapshot(ctx)
		require.NoError(t, err)
		assert.Len(t, snap.Payments, 5)
	})
}

func TestRepositories(t *testing.T) {
	ctx := context.Background()
	u, _ := newUoW(t)

	err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		require.NoError(t, tx.Payments().Create(ctx, &payment.Payment{ID: "6", Status: payment.StatusPending}))
		list, err := tx.Payments().List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "6", list[0].ID)

		dup := tx.Payments().Create(ctx, &payment.Payment{ID: "6"})
		assert.True(t, infra.IsKind(dup, infra.KindDuplicateKey))

		_, err = tx.Reservations().FindByID(ctx, "404")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))

		resident, err := tx.Users().FindByApartment(ctx, "torre b - 205")
		require.NoError(t, err)
		assert.Equal(t, "Carlos Ruiz", resident.Name)

		account, err := tx.Accounts().FindByUsername(ctx, "owner1")
		require.NoError(t, err)
		assert.Equal(t, "Torre A - 301", account.Identity.Apartment)
		assert.NoError(t, password.ComparePassword(account.PasswordHash, "owner123"))
		return nil
	})
	require.NoError(t, err)
}

func TestStore_CanceledContext(t *testing.T) {
	u, _ := newUoW(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := u.Within(ctx, func(context.Context, shared.Tx) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
