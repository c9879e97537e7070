package api

import (
	"net/http"

	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/handler/httperr"
	"residencial-admin/internal/handler/middleware"
	"residencial-admin/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("request is not authenticated")

// identityOrAbort answers 401 when no session identity is attached to the request.
func identityOrAbort(c *gin.Context) (auth.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return auth.Identity{}, false
	}
	return identity, true
}
