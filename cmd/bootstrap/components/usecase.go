package components

import (
	"log/slog"

	"residencial-admin/internal/domain/report"
	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/export"
	"residencial-admin/internal/pkg/clock"
	"residencial-admin/internal/pkg/config"
	"residencial-admin/internal/usecase"
	"residencial-admin/internal/usecase/commands"
	"residencial-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseDomainOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseDomainOption = fx.Provide(
	NewReservationFactory,
	NewConflictDetector,
	func(clk clock.Clock, cfg config.Config) *report.Aggregator {
		return report.NewAggregator(clk, cfg.Building.Name)
	},
	func(logger *slog.Logger) *export.Writer {
		return export.NewWriter(logger)
	},
)

func NewReservationFactory(clk clock.Clock, cfg config.Config) (*reservation.Factory, error) {
	policy, err := reservation.NewHallPolicy(cfg.Reservation.HallCapacity, cfg.Reservation.HallOpens, cfg.Reservation.HallCloses)
	if err != nil {
		return nil, err
	}
	return reservation.NewFactory(clk, policy), nil
}

// NewConflictDetector rejects unknown modes at startup instead of falling back silently.
func NewConflictDetector(cfg config.Config, logger *slog.Logger) (*reservation.Detector, error) {
	mode, err := reservation.ParseConflictMode(cfg.Reservation.ConflictMode)
	if err != nil {
		return nil, err
	}
	logger.Info("reservation conflict detection configured", "mode", mode)
	return reservation.NewDetector(mode), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
		commands.NewUserCommands,
		commands.NewFeeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewPaymentQueries,
		queries.NewUserQueries,
		queries.NewFeeQueries,
		queries.NewReportQueries,
		queries.NewDashboardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
