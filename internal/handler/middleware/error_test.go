//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"residencial-admin/internal/handler/httperr"
	"residencial-admin/internal/handler/middleware"
	"residencial-admin/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.ErrorHandler())

	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "Invalid status transition"
		_ = c.Error(&gin.Error{Err: errors.New("transition"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("hidden cause"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("store corrupted")
	})
	r.GET("/aborted", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadGateway, errors.New("upstream"), "Bad gateway", nil)
	})

	t.Run("renders the last public error", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Invalid status transition")
	})

	t.Run("hides private errors behind a generic 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "hidden cause")
	})

	t.Run("recovers panics", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "store corrupted")
	})

	t.Run("keeps responses already written", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/aborted", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusBadGateway, "Bad gateway")
	})
}
