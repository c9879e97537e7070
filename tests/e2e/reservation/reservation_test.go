//go:build e2e

package reservation_test

import (
	"net/http"
	"testing"

	"residencial-admin/internal/domain/reservation"
	resdto "residencial-admin/internal/handler/dto/response"
	"residencial-admin/internal/usecase/queries"
	"residencial-admin/tests/common/authtest"
	"residencial-admin/tests/common/builder"
	"residencial-admin/tests/common/httptest"
	"residencial-admin/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	calendarURL     = "/api/reservations/calendar"
	partyDate       = "2099-06-12"
)

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) TestOwnerRequestAndAdminApproval() {
	t := s.T()
	ownerToken := authtest.LoginOwner(t, s.Router)
	adminToken := authtest.LoginAdmin(t, s.Router)

	// owner request starts pending and carries the owner's apartment
	req := builder.NewReservationBuilder().WithDate(partyDate).BuildRequest()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req, ownerToken)
	var created resdto.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.Equal(t, reservation.StatusPending, created.Status)
	require.Equal(t, "Torre A - 301", created.Apartment)
	require.Equal(t, "18:00 - 22:00", created.Time)

	// an admin booking on the same day is approved at once
	adminReq := builder.NewReservationBuilder().WithDate(partyDate).WithTime("09:00", "12:00").BuildRequest()
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, adminReq, adminToken)
	var adminBooking resdto.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &adminBooking)
	require.Equal(t, reservation.StatusApproved, adminBooking.Status)

	// approving the owner's booking reports both as conflicting
	w = httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationsURL+"/"+created.ID+"/approve", nil, adminToken)
	var approved resdto.ApproveReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &approved)
	require.True(t, approved.HasConflict)
	require.Len(t, approved.Conflicts, 2)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, calendarURL, nil, ownerToken)
	var cal queries.CalendarView
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &cal)
	require.Len(t, cal.ConflictDates, 1)
	require.Equal(t, partyDate, cal.ConflictDates[0].String())
	require.Equal(t, reservation.ConflictSameDay, cal.Mode)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, calendarURL+"/"+partyDate, nil, ownerToken)
	var day resdto.DayResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &day)
	require.True(t, day.HasConflicts)
	require.Len(t, day.Reservations, 2)
	require.Equal(t, "12 de junio de 2099", day.Label)
	for _, e := range day.Reservations {
		require.True(t, e.InConflict)
	}

	// a second approval is not a valid transition
	w = httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationsURL+"/"+created.ID+"/approve", nil, adminToken)
	httptest.AssertErrorResponse(t, w, http.StatusConflict, "Invalid status transition")

	w = httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationsURL+"/"+created.ID+"/complete", nil, adminToken)
	var completed resdto.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &completed)
	require.Equal(t, reservation.StatusCompleted, completed.Status)
}

func (s *reservationSuite) TestOwnerSeesOwnApartmentOnly() {
	t := s.T()

	var own []resdto.ReservationResponse
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, authtest.LoginOwner(t, s.Router))
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &own)
	require.Len(t, own, 2)
	for _, r := range own {
		require.Equal(t, "Torre A - 301", r.Apartment)
	}

	var all []resdto.ReservationResponse
	w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, authtest.LoginAdmin(t, s.Router))
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &all)
	require.Len(t, all, 4)
}

func (s *reservationSuite) TestRequestValidation() {
	cases := []struct {
		name   string
		mutate func(*builder.ReservationBuilder)
	}{
		{name: "end before start", mutate: func(b *builder.ReservationBuilder) { b.StartTime, b.EndTime = "22:00", "18:00" }},
		{name: "outside hall hours", mutate: func(b *builder.ReservationBuilder) { b.StartTime, b.EndTime = "06:00", "09:00" }},
		{name: "over hall capacity", mutate: func(b *builder.ReservationBuilder) { b.Attendees = 51 }},
		{name: "date in the past", mutate: func(b *builder.ReservationBuilder) { b.Date = "2020-01-01" }},
		{name: "malformed date", mutate: func(b *builder.ReservationBuilder) { b.Date = "12/06/2099" }},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			req := builder.NewReservationBuilder().WithDate(partyDate).With(tc.mutate).BuildRequest()
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, req, authtest.LoginOwner(s.T(), s.Router))
			httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Validation failed")
		})
	}
}

func (s *reservationSuite) TestAdminEdit() {
	t := s.T()
	adminToken := authtest.LoginAdmin(t, s.Router)

	body := map[string]any{"startTime": "17:00", "attendees": 40}
	w := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+"/3", body, adminToken)
	var edited resdto.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &edited)
	require.Equal(t, "17:00 - 20:00", edited.Time)
	require.Equal(t, 40, edited.Attendees)

	w = httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+"/missing", body, adminToken)
	httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
}
