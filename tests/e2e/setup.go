//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"residencial-admin/cmd/bootstrap"
	"residencial-admin/cmd/bootstrap/components"
	"residencial-admin/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Builds the whole application graph on a freshly seeded in-memory state
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config) (*gin.Engine, *fx.App, error) {
	var router *gin.Engine

	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.ClockModule,
		bootstrap.JWTModule,
		bootstrap.StoreModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to start fx app: %w", err)
	}
	return router, app, nil
}

// ------------------------------------------------------------
// Common setup for E2E suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
	app    *fx.App
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Config = config.NewTestConfig()
}

// SetupTest starts a fresh application per test so state never leaks between tests.
func (s *SharedSuite) SetupTest() {
	s.startApp()
}

func (s *SharedSuite) TearDownTest() {
	s.stopApp()
}

// SetupSubTest resets the state for each table case.
func (s *SharedSuite) SetupSubTest() {
	s.stopApp()
	s.startApp()
}

func (s *SharedSuite) startApp() {
	router, app, err := buildE2EApp(s.Config)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), router, "Router setup failed")
	s.Router = router
	s.app = app
}

func (s *SharedSuite) stopApp() {
	if s.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.Stop(ctx); err != nil {
		slog.Warn("failed to stop fx application", "error", err.Error())
	}
	s.app = nil
}
