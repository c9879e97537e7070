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

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary List reservations
// @Description Admins see every booking, owners only the ones of their apartment
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	list, err := h.q.List(c.Request.Context(), identity)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservations(list))
}

// @Summary Request reservation
// @Description Book the social hall. Owner requests start Pendiente, admin bookings are approved at once.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	identity, ok := identityOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.cmds.Request(c.Request.Context(), req, identity)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to create reservation")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(*res))
}

// @Summary Approve reservation
// @Description Approve a pending booking and report the bookings it conflicts with on that date
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ApproveReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/approve [patch]
func (h *ReservationHandler) Approve(c *gin.Context) {
	result, err := h.cmds.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to approve reservation")
		return
	}
	c.JSON(http.StatusOK, resdto.FromApproveResult(result))
}

// @Summary Reject reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/reject [patch]
func (h *ReservationHandler) Reject(c *gin.Context) {
	res, err := h.cmds.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to reject reservation")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(*res))
}

// @Summary Complete reservation
// @Description Mark a pending or approved booking as held
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/complete [patch]
func (h *ReservationHandler) Complete(c *gin.Context) {
	res, err := h.cmds.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to complete reservation")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(*res))
}

// @Summary Edit reservation
// @Description Partial admin edit of date, time, event and attendees
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [put]
func (h *ReservationHandler) Edit(c *gin.Context) {
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	res, err := h.cmds.Edit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to edit reservation")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(*res))
}

// @Summary Calendar markers
// @Description Dates with approved bookings and dates with conflicts
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.CalendarView
// @Failure 401 {object} httperr.Response
// @Router /api/reservations/calendar [get]
func (h *ReservationHandler) Calendar(c *gin.Context) {
	view, err := h.q.Calendar(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load calendar")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Calendar day
// @Description Approved bookings of one day, each flagged when it is part of a conflict
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reservations/calendar/{date} [get]
func (h *ReservationHandler) Day(c *gin.Context) {
	view, err := h.q.Day(c.Request.Context(), c.Param("date"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to load day")
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayView(view))
}
