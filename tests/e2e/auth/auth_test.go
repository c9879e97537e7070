//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/handler/dto/request"
	resdto "residencial-admin/internal/handler/dto/response"
	"residencial-admin/tests/common/authtest"
	"residencial-admin/tests/common/builder"
	"residencial-admin/tests/common/httptest"
	"residencial-admin/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		body           request.LoginRequest
		expectedStatus int
		expectedRole   auth.Role
	}{
		{name: "admin account", body: builder.NewAuthBuilder().BuildDTO(), expectedStatus: http.StatusOK, expectedRole: auth.RoleAdmin},
		{name: "owner account", body: builder.NewAuthBuilder().AsOwner().BuildDTO(), expectedStatus: http.StatusOK, expectedRole: auth.RoleOwner},
		{name: "unknown user", body: request.LoginRequest{Username: "nobody", Password: "admin123"}, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", body: builder.NewAuthBuilder().WithPassword("owner123").BuildDTO(), expectedStatus: http.StatusUnauthorized},
		{name: "empty password", body: builder.NewAuthBuilder().WithPassword("").BuildDTO(), expectedStatus: http.StatusBadRequest},
		{name: "empty username", body: request.LoginRequest{Password: "admin123"}, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, tt.body, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.Equal(t, "Bearer", res.TokenType)
				require.Greater(t, res.ExpiresIn, int64(0))
				require.Equal(t, tt.expectedRole, res.User.Role)
				require.NotNil(t, httptest.ExtractCookie(w, "residencial_session"))
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("owner identity carries the apartment", func() {
		t := s.T()
		token := authtest.LoginOwner(t, s.Router)

		var identity auth.Identity
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &identity)
		require.Equal(t, authtest.OwnerIdentity, identity)
	})

	s.Run("session cookie is accepted", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Username: "admin", Password: "admin123"}, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, httptest.ExtractCookies(w), "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("invalid token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "invalid-token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *authSuite) TestTokenExpiry() {
	t := s.T()
	expired := s.jwtHelper.CreateExpiredToken(t, authtest.AdminIdentity)

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func (s *authSuite) TestLogout() {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
		request.LoginRequest{Username: "owner1", Password: "owner123"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	cookies := httptest.ExtractCookies(w)
	authtest.LogoutUser(t, s.Router, cookies)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func (s *authSuite) TestRoleGuard() {
	ownerToken := authtest.LoginOwner(s.T(), s.Router)
	adminToken := s.jwtHelper.GenerateToken(s.T(), authtest.AdminIdentity)

	adminOnly := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/payments"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/fees"},
		{http.MethodGet, "/api/reports/payments"},
		{http.MethodPatch, "/api/reservations/1/approve"},
	}

	for _, ep := range adminOnly {
		s.Run(ep.method+" "+ep.path, func() {
			w := httptest.PerformRequest(s.T(), s.Router, ep.method, ep.path, nil, ownerToken)
			httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")

			w = httptest.PerformRequest(s.T(), s.Router, ep.method, ep.path, nil, adminToken)
			require.NotEqual(s.T(), http.StatusForbidden, w.Code)
		})
	}
}
