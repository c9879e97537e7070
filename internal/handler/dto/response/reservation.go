package response

import (
	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/usecase/commands"
)

type ReservationResponse struct {
	ID          string             `json:"id"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	StartTime   string             `json:"startTime"`
	EndTime     string             `json:"endTime"`
	Apartment   string             `json:"apartment"`
	Owner       string             `json:"owner"`
	Event       string             `json:"event"`
	Status      reservation.Status `json:"status"`
	Attendees   int                `json:"attendees"`
	Description string             `json:"description,omitempty"`
}

func FromReservation(r reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		Date:        r.Date.String(),
		Time:        r.Time.String(),
		StartTime:   r.Time.Start(),
		EndTime:     r.Time.End(),
		Apartment:   r.Apartment,
		Owner:       r.Owner,
		Event:       r.Event,
		Status:      r.Status,
		Attendees:   r.Attendees,
		Description: r.Description,
	}
}

func FromReservations(list []reservation.Reservation) []ReservationResponse {
	res := make([]ReservationResponse, len(list))
	for i, r := range list {
		res[i] = FromReservation(r)
	}
	return res
}

type ApproveReservationResponse struct {
	Reservation ReservationResponse   `json:"reservation"`
	Conflicts   []ReservationResponse `json:"conflicts"`
	HasConflict bool                  `json:"hasConflict"`
}

func FromApproveResult(r *commands.ApproveResult) ApproveReservationResponse {
	return ApproveReservationResponse{
		Reservation: FromReservation(r.Reservation),
		Conflicts:   FromReservations(r.Conflicts),
		HasConflict: len(r.Conflicts) > 0,
	}
}

type DayEntryResponse struct {
	ReservationResponse
	InConflict bool `json:"inConflict"`
}

type DayResponse struct {
	Date         string             `json:"date"`
	Label        string             `json:"label"`
	HasConflicts bool               `json:"hasConflicts"`
	Reservations []DayEntryResponse `json:"reservations"`
}

func FromDayView(v *reservation.DayView) DayResponse {
	entries := make([]DayEntryResponse, len(v.Reservations))
	for i, e := range v.Reservations {
		entries[i] = DayEntryResponse{
			ReservationResponse: FromReservation(e.Reservation),
			InConflict:          e.InConflict,
		}
	}
	return DayResponse{
		Date:         v.Date.String(),
		Label:        v.Label,
		HasConflicts: v.HasConflicts,
		Reservations: entries,
	}
}
