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

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary List payments
// @Description Every payment, newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Failure 403 {object} httperr.Response
// @Router /api/payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	list, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPayments(list))
}

// @Summary My payments
// @Description Payments whose owner is the session identity
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentResponse
// @Failure 401 {object} httperr.Response
// @Router /api/payments/mine [get]
func (h *PaymentHandler) Mine(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	list, err := h.q.ListByOwner(c.Request.Context(), identity)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPayments(list))
}

// @Summary Register payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentRequest true "Payment"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Router /api/payments [post]
func (h *PaymentHandler) Register(c *gin.Context) {
	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	p, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to register payment")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPayment(*p))
}

// @Summary Create charge
// @Description Bill an apartment; the charge starts Pendiente with no payment method
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateChargeRequest true "Charge"
// @Success 201 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Router /api/payments/charges [post]
func (h *PaymentHandler) CreateCharge(c *gin.Context) {
	var req reqdto.CreateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	p, err := h.cmds.CreateCharge(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to create charge")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPayment(*p))
}

// @Summary Update payment status
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param request body reqdto.UpdatePaymentStatusRequest true "New status"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/payments/{id}/status [patch]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	p, err := h.cmds.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to update payment")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPayment(*p))
}
