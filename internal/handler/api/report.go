package api

import (
	"net/http"

	"residencial-admin/internal/handler/httperr"
	"residencial-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Report
// @Description Summary counts plus the full collection of one kind
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param kind path string true "payments, users or reservations"
// @Success 200 {object} report.Report
// @Failure 404 {object} httperr.Response
// @Router /api/reports/{kind} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	r, err := h.q.Generate(c.Request.Context(), c.Param("kind"))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Plain-text report download
// @Tags reports
// @Produce plain
// @Security BearerAuth
// @Param kind path string true "payments, users or reservations"
// @Success 200 {file} file
// @Failure 404 {object} httperr.Response
// @Router /api/reports/{kind}/text [get]
func (h *ReportHandler) ExportText(c *gin.Context) {
	sink := newAttachmentSink(c)
	if err := h.q.ExportText(c.Request.Context(), c.Param("kind"), sink); err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to export report")
		return
	}
}

// @Summary CSV download
// @Description Delimited export of one collection; 204 when there is nothing to export
// @Tags reports
// @Produce text/csv
// @Security BearerAuth
// @Param kind path string true "payments, users or reservations"
// @Success 200 {file} file
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/reports/{kind}/csv [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	sink := newAttachmentSink(c)
	written, err := h.q.ExportCSV(c.Request.Context(), c.Param("kind"), sink)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Failed to export report")
		return
	}
	if !written {
		c.Status(http.StatusNoContent)
	}
}
