package request

import (
	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/pkg/civil"
)

type CreateReservationRequest struct {
	Date        string  `json:"date" binding:"required"`
	StartTime   string  `json:"startTime" binding:"required"`
	EndTime     string  `json:"endTime" binding:"required"`
	Event       string  `json:"event" binding:"required"`
	Attendees   int     `json:"attendees" binding:"min=0"`
	Description *string `json:"description,omitempty"`
	// Apartment and Owner are only honoured for admin bookings made on behalf of a resident.
	Apartment *string `json:"apartment,omitempty"`
	Owner     *string `json:"owner,omitempty"`
}

// ToDomain fills apartment and owner from the session identity.
func (r CreateReservationRequest) ToDomain(actor auth.Identity) (reservation.Request, error) {
	date, err := civil.Parse(r.Date)
	if err != nil {
		return reservation.Request{}, err
	}
	slot, err := reservation.NewTimeRange(r.StartTime, r.EndTime)
	if err != nil {
		return reservation.Request{}, err
	}

	req := reservation.Request{
		Date:      date,
		Time:      slot,
		Apartment: actor.Apartment,
		Owner:     actor.Name,
		Event:     r.Event,
		Attendees: r.Attendees,
	}
	if r.Description != nil {
		req.Description = *r.Description
	}
	if actor.IsAdmin() {
		if r.Apartment != nil {
			req.Apartment = *r.Apartment
		}
		if r.Owner != nil {
			req.Owner = *r.Owner
		}
	}
	return req, nil
}

type UpdateReservationRequest struct {
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Event     *string `json:"event,omitempty"`
	Attendees *int    `json:"attendees,omitempty" binding:"omitempty,min=0"`
}

// ToDomain needs the current slot because start and end may be edited independently.
func (r UpdateReservationRequest) ToDomain(current reservation.TimeRange) (reservation.Edit, error) {
	var edit reservation.Edit
	if r.Date != nil {
		date, err := civil.Parse(*r.Date)
		if err != nil {
			return reservation.Edit{}, err
		}
		edit.Date = &date
	}
	if r.StartTime != nil || r.EndTime != nil {
		start, end := current.Start(), current.End()
		if r.StartTime != nil {
			start = *r.StartTime
		}
		if r.EndTime != nil {
			end = *r.EndTime
		}
		slot, err := reservation.NewTimeRange(start, end)
		if err != nil {
			return reservation.Edit{}, err
		}
		edit.Time = &slot
	}
	edit.Event = r.Event
	edit.Attendees = r.Attendees
	return edit, nil
}
