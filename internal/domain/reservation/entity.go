package reservation

import (
	"errors"
	"fmt"
	"strings"

	"residencial-admin/internal/pkg/civil"
	"residencial-admin/internal/pkg/patch"
)

var (
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrOutsideHallHours        = errors.New("reservation outside hall hours")
	ErrInvalidAttendees        = errors.New("invalid number of attendees")
	ErrInvalidStatus           = errors.New("invalid reservation status")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrEmptyEvent              = errors.New("event is required")
	ErrMissingApartment        = errors.New("apartment is required")
	ErrMissingDate             = errors.New("date is required")
	ErrDateInPast              = errors.New("date is in the past")
)

// Reservation is a booking of the social hall. Records are never deleted; they only change status
// or get edited by an admin.
type Reservation struct {
	ID          string     `json:"id"`
	Date        civil.Date `json:"date"`
	Time        TimeRange  `json:"time"`
	Apartment   string     `json:"apartment"`
	Owner       string     `json:"owner"`
	Event       string     `json:"event"`
	Status      Status     `json:"status"`
	Attendees   int        `json:"attendees"`
	Description string     `json:"description,omitempty"`
}

func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusApproved
}

func (r *Reservation) TransitionTo(next Status) error {
	if !r.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, r.Status, next)
	}
	r.Status = next
	return nil
}

func (r *Reservation) Approve() error  { return r.TransitionTo(StatusApproved) }
func (r *Reservation) Reject() error   { return r.TransitionTo(StatusRejected) }
func (r *Reservation) Complete() error { return r.TransitionTo(StatusCompleted) }

// Edit carries the admin-editable fields; nil means unchanged.
type Edit struct {
	Date      *civil.Date
	Time      *TimeRange
	Event     *string
	Attendees *int
}

func (r *Reservation) ApplyEdit(e Edit, policy HallPolicy) error {
	date := patch.Coalesce(e.Date, r.Date)
	if date.IsZero() {
		return ErrMissingDate
	}
	slot := patch.Coalesce(e.Time, r.Time)
	attendees := patch.Coalesce(e.Attendees, r.Attendees)
	if err := policy.Validate(slot, attendees); err != nil {
		return err
	}
	event := r.Event
	if e.Event != nil {
		event = strings.TrimSpace(*e.Event)
		if event == "" {
			return ErrEmptyEvent
		}
	}

	r.Date = date
	r.Time = slot
	r.Attendees = attendees
	r.Event = event
	return nil
}
