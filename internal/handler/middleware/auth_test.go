//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/handler/middleware"
	"residencial-admin/internal/pkg/cookie"
	"residencial-admin/tests/common/authtest"
	"residencial-admin/tests/common/httptest"
	usecasemock "residencial-admin/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, validator *usecasemock.MockTokenValidator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := middleware.NewAuthMiddleware(validator)
	r := gin.New()
	r.Use(middleware.ErrorHandler())

	protected := r.Group("", m.RequireAuth())
	protected.GET("/me", func(c *gin.Context) {
		identity, ok := middleware.GetIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, identity)
	})
	protected.GET("/admin", m.RequireRole(auth.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/orphan", m.RequireRole(auth.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	t.Run("bearer token attaches identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("good-token").Return(authtest.OwnerIdentity, nil)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodGet, "/me", nil, "good-token")

		var identity auth.Identity
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &identity)
		assert.Equal(t, authtest.OwnerIdentity, identity)
	})

	t.Run("session cookie wins over header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("cookie-token").Return(authtest.AdminIdentity, nil)

		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(t, newAuthRouter(t, validator), http.MethodGet, "/me", nil, cookies, "header-token")

		var identity auth.Identity
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &identity)
		assert.Equal(t, auth.RoleAdmin, identity.Role)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("bad-token").Return(auth.Identity{}, errors.New("token is expired"))

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodGet, "/me", nil, "bad-token")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		identity   auth.Identity
		wantStatus int
	}{
		{name: "admin passes", identity: authtest.AdminIdentity, wantStatus: http.StatusNoContent},
		{name: "owner is forbidden", identity: authtest.OwnerIdentity, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			validator.EXPECT().ValidateToken("token").Return(tt.identity, nil)

			rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodGet, "/admin", nil, "token")
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
			}
		})
	}

	t.Run("without RequireAuth fails closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)

		rec := httptest.PerformRequest(t, newAuthRouter(t, validator), http.MethodGet, "/orphan", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
