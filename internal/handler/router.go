package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/handler/api"
	"residencial-admin/internal/handler/middleware"
	"residencial-admin/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	User        *api.UserHandler
	Fee         *api.FeeHandler
	Report      *api.ReportHandler
	Dashboard   *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := []gin.HandlerFunc{authMiddleware.RequireRole(auth.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			addRoutes(authGroup, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := authGroup.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(authMiddleware.RequireAuth())

		addRoutes(protected.Group("/dashboard"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Dashboard.Get},
		})

		addRoutes(protected.Group("/reservations"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodGet, Path: "/calendar", Handler: h.Reservation.Calendar},
			{Method: http.MethodGet, Path: "/calendar/:date", Handler: h.Reservation.Day},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Edit, Mw: adminOnly},
			{Method: http.MethodPatch, Path: "/:id/approve", Handler: h.Reservation.Approve, Mw: adminOnly},
			{Method: http.MethodPatch, Path: "/:id/reject", Handler: h.Reservation.Reject, Mw: adminOnly},
			{Method: http.MethodPatch, Path: "/:id/complete", Handler: h.Reservation.Complete, Mw: adminOnly},
		})

		addRoutes(protected.Group("/payments"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Payment.List, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/mine", Handler: h.Payment.Mine},
			{Method: http.MethodPost, Path: "", Handler: h.Payment.Register, Mw: adminOnly},
			{Method: http.MethodPost, Path: "/charges", Handler: h.Payment.CreateCharge, Mw: adminOnly},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Payment.UpdateStatus, Mw: adminOnly},
		})

		admin := protected.Group("")
		admin.Use(adminOnly...)

		addRoutes(admin.Group("/users"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.User.Search},
			{Method: http.MethodPost, Path: "", Handler: h.User.Create},
		})

		addRoutes(admin.Group("/fees"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Fee.List},
			{Method: http.MethodPost, Path: "", Handler: h.Fee.Create},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Fee.UpdateStatus},
		})

		addRoutes(admin.Group("/reports"), []route{
			{Method: http.MethodGet, Path: "/:kind", Handler: h.Report.Get},
			{Method: http.MethodGet, Path: "/:kind/text", Handler: h.Report.ExportText},
			{Method: http.MethodGet, Path: "/:kind/csv", Handler: h.Report.ExportCSV},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
