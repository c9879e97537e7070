package api

import (
	"context"
	"fmt"
	"net/http"

	"residencial-admin/internal/export"

	"github.com/gin-gonic/gin"
)

// attachmentSink answers the request with the delivered file as a download.
type attachmentSink struct {
	c *gin.Context
}

func newAttachmentSink(c *gin.Context) *attachmentSink {
	return &attachmentSink{c: c}
}

func (s *attachmentSink) Deliver(_ context.Context, f export.File) error {
	s.c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	s.c.Data(http.StatusOK, f.ContentType+"; charset=utf-8", f.Body)
	return nil
}
