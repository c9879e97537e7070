package reservation

import (
	"strings"

	"residencial-admin/internal/pkg/civil"
	"residencial-admin/internal/pkg/clock"

	"github.com/google/uuid"
)

type Request struct {
	Date        civil.Date
	Time        TimeRange
	Apartment   string
	Owner       string
	Event       string
	Attendees   int
	Description string
}

type Factory struct {
	Clock  clock.Clock
	Policy HallPolicy
}

func NewFactory(clock clock.Clock, policy HallPolicy) *Factory {
	return &Factory{
		Clock:  clock,
		Policy: policy,
	}
}

// CreateReservation validates a hall request. Admin bookings skip the approval queue.
func (f *Factory) CreateReservation(req Request, autoApprove bool) (*Reservation, error) {
	if req.Date.IsZero() {
		return nil, ErrMissingDate
	}
	if req.Date.Before(clock.Today(f.Clock)) {
		return nil, ErrDateInPast
	}
	if strings.TrimSpace(req.Apartment) == "" {
		return nil, ErrMissingApartment
	}
	event := strings.TrimSpace(req.Event)
	if event == "" {
		return nil, ErrEmptyEvent
	}
	if err := f.Policy.Validate(req.Time, req.Attendees); err != nil {
		return nil, err
	}

	status := StatusPending
	if autoApprove {
		status = StatusApproved
	}

	return &Reservation{
		ID:          uuid.NewString(),
		Date:        req.Date,
		Time:        req.Time,
		Apartment:   strings.TrimSpace(req.Apartment),
		Owner:       strings.TrimSpace(req.Owner),
		Event:       event,
		Status:      status,
		Attendees:   req.Attendees,
		Description: strings.TrimSpace(req.Description),
	}, nil
}
