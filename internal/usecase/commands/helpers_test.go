//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"residencial-admin/internal/pkg/clock"
	"residencial-admin/internal/usecase/shared"
	sharedmock "residencial-admin/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var (
	discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	testNow       = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
)

func testClock() clock.Clock {
	return clock.NewMockClock(testNow)
}

// newTxMocks returns a unit of work that runs every callback, read-only or not, against one mock tx.
func newTxMocks(t *testing.T) (*sharedmock.MockUnitOfWork, *sharedmock.MockTx, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)

	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, tx)
	}
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	return uow, tx, ctrl
}
