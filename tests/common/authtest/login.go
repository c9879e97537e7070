//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"residencial-admin/internal/handler/dto/request"
	"residencial-admin/internal/pkg/cookie"
	"residencial-admin/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
	OwnerUsername = "owner1"
	OwnerPassword = "owner123"
)

// LoginUser returns the session token set as a cookie by the login endpoint.
func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func LoginAdmin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	return LoginUser(t, router, AdminUsername, AdminPassword)
}

func LoginOwner(t *testing.T, router *gin.Engine) string {
	t.Helper()
	return LoginUser(t, router, OwnerUsername, OwnerPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
