package components

import (
	"residencial-admin/internal/infra/uow"

	"go.uber.org/fx"
)

// Repositories are reached through shared.Tx, so the unit of work is the only binding.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewMemoryUoW,
	),
)
