package report

import (
	"errors"

	"residencial-admin/internal/domain/payment"
	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/domain/user"
)

var ErrUnknownKind = errors.New("unknown report kind")

type Kind string

const (
	KindPayments     Kind = "payments"
	KindUsers        Kind = "users"
	KindReservations Kind = "reservations"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindPayments, KindUsers, KindReservations:
		return k, nil
	default:
		return "", ErrUnknownKind
	}
}

// Label is the Spanish plural used in titles and export filenames.
func (k Kind) Label() string {
	switch k {
	case KindPayments:
		return "Pagos"
	case KindUsers:
		return "Usuarios"
	case KindReservations:
		return "Reservas"
	default:
		return string(k)
	}
}

// Collection is the closed set of record lists a report can be built from.
type Collection interface {
	Kind() Kind
	Len() int
	collection()
}

type (
	Payments     []payment.Payment
	Users        []user.User
	Reservations []reservation.Reservation
)

func (Payments) Kind() Kind     { return KindPayments }
func (Users) Kind() Kind        { return KindUsers }
func (Reservations) Kind() Kind { return KindReservations }

func (c Payments) Len() int     { return len(c) }
func (c Users) Len() int        { return len(c) }
func (c Reservations) Len() int { return len(c) }

func (Payments) collection()     {}
func (Users) collection()        {}
func (Reservations) collection() {}
