package httperr

import (
	"net/http"

	"residencial-admin/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	sentinel error
	status   int
	message  string
}

// checked in order: the first matching sentinel wins
var usecaseErrors = []mapping{
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrPaymentNotFound, http.StatusNotFound, "Payment not found"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrFeeNotFound, http.StatusNotFound, "Fee not found"},
	{errs.ErrUnknownReportKind, http.StatusNotFound, "Unknown report kind"},
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrInvalidStatusTransition, http.StatusConflict, "Invalid status transition"},
	{errs.ErrForbidden, http.StatusForbidden, "Insufficient permissions"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Validation failed"},
	{errs.ErrExportFailed, http.StatusInternalServerError, "Export failed"},
}

// AbortWithUsecaseError maps a usecase error to its status; unknown errors become 500.
func AbortWithUsecaseError(c *gin.Context, err error, fallback string) {
	for _, m := range usecaseErrors {
		if errs.Is(err, m.sentinel) {
			AbortWithError(c, m.status, err, m.message, detailOf(m.status, err))
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}

// validation failures carry the domain message so forms can show it
func detailOf(status int, err error) any {
	if status != http.StatusBadRequest {
		return nil
	}
	return err.Error()
}
