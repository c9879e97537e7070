//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/pkg/civil"
	"residencial-admin/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*reservation.Request)
	errIs  error
}

func validRequest() reservation.Request {
	return reservation.Request{
		Date:      civil.MustParse("2026-10-24"),
		Time:      reservation.MustParseTimeRange("18:00 - 22:00"),
		Apartment: "Torre A - 301",
		Owner:     "María González",
		Event:     "Cumpleaños",
		Attendees: 30,
	}
}

func newFactory() *reservation.Factory {
	clk := clock.NewMockClock(time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC))
	return reservation.NewFactory(clk, reservation.DefaultHallPolicy())
}

func TestFactory_CreateReservation(t *testing.T) {
	t.Run("owner request is pending", func(t *testing.T) {
		r, err := newFactory().CreateReservation(validRequest(), false)
		require.NoError(t, err)
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, reservation.StatusPending, r.Status)
		assert.Equal(t, "18:00 - 22:00", r.Time.String())
	})

	t.Run("admin request is approved", func(t *testing.T) {
		r, err := newFactory().CreateReservation(validRequest(), true)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusApproved, r.Status)
	})

	runCases(t, []testCase{
		{
			name:   "today is allowed",
			mutate: func(r *reservation.Request) { r.Date = civil.MustParse("2026-10-19") },
		},
		{
			name:   "zero attendees allowed",
			mutate: func(r *reservation.Request) { r.Attendees = 0 },
		},
		{
			name:   "full capacity allowed",
			mutate: func(r *reservation.Request) { r.Attendees = 50 },
		},
		{
			name:   "over capacity",
			mutate: func(r *reservation.Request) { r.Attendees = 51 },
			errIs:  reservation.ErrInvalidAttendees,
		},
		{
			name:   "negative attendees",
			mutate: func(r *reservation.Request) { r.Attendees = -1 },
			errIs:  reservation.ErrInvalidAttendees,
		},
		{
			name:   "past date",
			mutate: func(r *reservation.Request) { r.Date = civil.MustParse("2026-10-18") },
			errIs:  reservation.ErrDateInPast,
		},
		{
			name:   "missing date",
			mutate: func(r *reservation.Request) { r.Date = civil.Date{} },
			errIs:  reservation.ErrMissingDate,
		},
		{
			name:   "blank event",
			mutate: func(r *reservation.Request) { r.Event = "  " },
			errIs:  reservation.ErrEmptyEvent,
		},
		{
			name:   "missing apartment",
			mutate: func(r *reservation.Request) { r.Apartment = "" },
			errIs:  reservation.ErrMissingApartment,
		},
		{
			name:   "before opening",
			mutate: func(r *reservation.Request) { r.Time = reservation.MustParseTimeRange("07:00 - 09:00") },
			errIs:  reservation.ErrOutsideHallHours,
		},
		{
			name:   "missing time",
			mutate: func(r *reservation.Request) { r.Time = reservation.TimeRange{} },
			errIs:  reservation.ErrInvalidTimeRange,
		},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validRequest()
			c.mutate(&req)

			actual, err := newFactory().CreateReservation(req, false)

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestReservation_Transitions(t *testing.T) {
	tests := []struct {
		from reservation.Status
		to   reservation.Status
		ok   bool
	}{
		{reservation.StatusPending, reservation.StatusApproved, true},
		{reservation.StatusPending, reservation.StatusRejected, true},
		{reservation.StatusPending, reservation.StatusCompleted, true},
		{reservation.StatusApproved, reservation.StatusCompleted, true},
		{reservation.StatusApproved, reservation.StatusRejected, false},
		{reservation.StatusApproved, reservation.StatusPending, false},
		{reservation.StatusRejected, reservation.StatusApproved, false},
		{reservation.StatusCompleted, reservation.StatusApproved, false},
		{reservation.StatusCompleted, reservation.StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			r := reservation.Reservation{ID: "1", Status: tt.from}
			err := r.TransitionTo(tt.to)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, r.Status)
				return
			}
			require.ErrorIs(t, err, reservation.ErrInvalidStatusTransition)
			assert.Equal(t, tt.from, r.Status)
		})
	}
}

func TestReservation_ApplyEdit(t *testing.T) {
	policy := reservation.DefaultHallPolicy()
	base := booking("1", "2024-01-20", "18:00 - 22:00", reservation.StatusApproved)

	t.Run("partial edit keeps other fields", func(t *testing.T) {
		r := base
		event := "Reunión de copropietarios"
		require.NoError(t, r.ApplyEdit(reservation.Edit{Event: &event}, policy))
		assert.Equal(t, event, r.Event)
		assert.Equal(t, base.Date, r.Date)
		assert.Equal(t, base.Time, r.Time)
		assert.Equal(t, base.Attendees, r.Attendees)
	})

	t.Run("invalid edit leaves record untouched", func(t *testing.T) {
		r := base
		slot := reservation.MustParseTimeRange("22:00 - 23:30")
		err := r.ApplyEdit(reservation.Edit{Time: &slot}, policy)
		require.ErrorIs(t, err, reservation.ErrOutsideHallHours)
		assert.Equal(t, base, r)
	})
}
