package api

import (
	"net/http"

	"residencial-admin/internal/handler/httperr"
	"residencial-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Dashboard
// @Description Admin overview or the owner's own account state, depending on the session role
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardView
// @Failure 401 {object} httperr.Response
// @Router /api/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), identity)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, view)
}
