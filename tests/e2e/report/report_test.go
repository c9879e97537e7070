//go:build e2e

package report_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"residencial-admin/tests/common/authtest"
	"residencial-admin/tests/common/httptest"
	"residencial-admin/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type reportSuite struct {
	e2e.SharedSuite
	token string
}

func TestReportSuite(t *testing.T) {
	suite.Run(t, new(reportSuite))
}

func (s *reportSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.token = authtest.LoginAdmin(s.T(), s.Router)
}

func (s *reportSuite) TestReportJSON() {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reports/payments", nil, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Title    string           `json:"title"`
		Summary  map[string]int   `json:"summary"`
		Payments []map[string]any `json:"payments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Reporte de Pagos - Torres del Valle", body.Title)
	require.Equal(t, 5, body.Summary["totalPayments"])
	require.Len(t, body.Payments, 5)
	// summary keys keep their declared order
	require.Less(t, strings.Index(w.Body.String(), "totalPayments"), strings.Index(w.Body.String(), "totalOverdue"))
}

func (s *reportSuite) TestTextDownload() {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reports/users/text", nil, s.token)
	body := httptest.AssertAttachment(t, w, "Reporte_de_Usuarios_-_Torres_del_Valle.txt", "text/plain")

	require.True(t, strings.HasPrefix(body, "Reporte de Usuarios - Torres del Valle\nGenerado el: "))
	require.Contains(t, body, "\n\nRESUMEN:\ntotalUsers: 5\n")
	require.Contains(t, body, "\n\nDATOS:\n{\n  \"title\"")
}

func (s *reportSuite) TestCSVDownload() {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/reports/reservations/csv", nil, s.token)
	body := httptest.AssertAttachment(t, w, "reservas_torres_del_valle.csv", "text/csv")

	lines := strings.Split(body, "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "id,date,time,apartment,owner,event,status,attendees", lines[0])
	require.False(t, strings.HasSuffix(body, "\n"))
}

func (s *reportSuite) TestUnknownKind() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/reports/fees", nil, s.token)
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Unknown report kind")
}
