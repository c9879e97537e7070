//go:build unit || e2e

package httptest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertAttachment checks a file download and returns its body.
func AssertAttachment(t *testing.T, w *httptest.ResponseRecorder, filename, contentType string) string {
	t.Helper()

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, fmt.Sprintf("attachment; filename=%q", filename), w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), contentType),
		"content type %q does not start with %q", w.Header().Get("Content-Type"), contentType)
	return w.Body.String()
}
