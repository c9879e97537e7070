package api

import (
	"net/http"

	reqdto "residencial-admin/internal/handler/dto/request"
	resdto "residencial-admin/internal/handler/dto/response"
	"residencial-admin/internal/handler/httperr"
	"residencial-admin/internal/usecase/commands"
	"residencial-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FeeHandler struct {
	cmds commands.FeeCommands
	q    queries.FeeQueries
}

func NewFeeHandler(cmds commands.FeeCommands, q queries.FeeQueries) *FeeHandler {
	return &FeeHandler{cmds: cmds, q: q}
}

// @Summary List fees
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FeeResponse
// @Router /api/fees [get]
func (h *FeeHandler) List(c *gin.Context) {
	list, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list fees")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFees(list))
}

// @Summary Create fee
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFeeRequest true "Fee"
// @Success 201 {object} resdto.FeeResponse
// @Failure 400 {object} httperr.Response
// @Router /api/fees [post]
func (h *FeeHandler) Create(c *gin.Context) {
	var req reqdto.CreateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	f, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to create fee")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFee(*f))
}

// @Summary Activate or deactivate fee
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Fee ID"
// @Param request body reqdto.UpdateFeeStatusRequest true "New status"
// @Success 200 {object} resdto.FeeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/fees/{id}/status [patch]
func (h *FeeHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateFeeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	f, err := h.cmds.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to update fee")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFee(*f))
}
