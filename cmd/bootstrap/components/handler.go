package components

import (
	"residencial-admin/internal/handler"
	"residencial-admin/internal/handler/api"
	"residencial-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

type handlerParams struct {
	fx.In

	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	User        *api.UserHandler
	Fee         *api.FeeHandler
	Report      *api.ReportHandler
	Dashboard   *api.DashboardHandler
}

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewUserHandler,
		api.NewFeeHandler,
		api.NewReportHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		func(p handlerParams) handler.Handlers {
			return handler.Handlers{
				Auth:        p.Auth,
				Reservation: p.Reservation,
				Payment:     p.Payment,
				User:        p.User,
				Fee:         p.Fee,
				Report:      p.Report,
				Dashboard:   p.Dashboard,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
