//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/domain/payment"
	"residencial-admin/internal/handler/api"
	"residencial-admin/internal/handler/middleware"
	"residencial-admin/internal/usecase/queries"
	"residencial-admin/tests/common/authtest"
	"residencial-admin/tests/common/builder"
	"residencial-admin/tests/common/httptest"
	queriesmock "residencial-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDashboardRouter(t *testing.T, q queries.DashboardQueries, identity *auth.Identity) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	h := api.NewDashboardHandler(q)
	r.GET("/dashboard", func(c *gin.Context) {
		if identity != nil {
			middleware.SetIdentity(c, *identity)
		}
		h.Get(c)
	})
	return r
}

func TestDashboardHandler(t *testing.T) {
	t.Run("admin view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockDashboardQueries(ctrl)
		admin := authtest.AdminIdentity
		q.EXPECT().Get(gomock.Any(), admin).Return(&queries.DashboardView{
			Role: auth.RoleAdmin,
			Admin: &queries.AdminDashboard{
				ActiveOwners:        4,
				TotalCollected:      "$2,400,000",
				PendingReservations: 1,
				RecentPayments:      []payment.Payment{builder.NewPaymentBuilder().BuildDomain()},
			},
		}, nil)

		rec := httptest.PerformRequest(t, newDashboardRouter(t, q, &admin), http.MethodGet, "/dashboard", nil, "")

		var got map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, "admin", got["role"])
		assert.NotContains(t, got, "owner")
		adminView, ok := got["admin"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(4), adminView["activeOwners"])
		assert.Equal(t, "$2,400,000", adminView["totalCollected"])
		assert.Len(t, adminView["recentPayments"], 1)
	})

	t.Run("owner view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockDashboardQueries(ctrl)
		owner := authtest.OwnerIdentity
		q.EXPECT().Get(gomock.Any(), owner).Return(&queries.DashboardView{
			Role:  auth.RoleOwner,
			Owner: &queries.OwnerDashboard{Balance: "$0", UpToDate: true},
		}, nil)

		rec := httptest.PerformRequest(t, newDashboardRouter(t, q, &owner), http.MethodGet, "/dashboard", nil, "")

		var got map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
		assert.NotContains(t, got, "admin")
		ownerView, ok := got["owner"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, ownerView["upToDate"])
	})

	t.Run("no identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockDashboardQueries(ctrl)

		rec := httptest.PerformRequest(t, newDashboardRouter(t, q, nil), http.MethodGet, "/dashboard", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockDashboardQueries(ctrl)
		admin := authtest.AdminIdentity
		q.EXPECT().Get(gomock.Any(), admin).Return(nil, errors.New("snapshot failed"))

		rec := httptest.PerformRequest(t, newDashboardRouter(t, q, &admin), http.MethodGet, "/dashboard", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Failed to load dashboard")
	})
}
