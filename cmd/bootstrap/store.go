package bootstrap

import (
	"context"
	"log/slog"

	"residencial-admin/internal/infra/memstore"
	"residencial-admin/internal/pkg/password"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore seeds the application state; everything is lost when the process stops.
func NewStore(lc fx.Lifecycle, logger *slog.Logger) (*memstore.Store, error) {
	seed, err := memstore.Seed(password.DefaultCost)
	if err != nil {
		return nil, err
	}
	store := memstore.New(seed)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("application state seeded",
				"payments", len(seed.Payments),
				"users", len(seed.Users),
				"reservations", len(seed.Reservations),
				"fees", len(seed.Fees))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			st, err := store.Snapshot(ctx)
			if err != nil {
				return err
			}
			logger.Info("discarding application state",
				"payments", len(st.Payments),
				"reservations", len(st.Reservations))
			return nil
		},
	})

	return store, nil
}
