package memstore

import (
	"residencial-admin/internal/domain/auth"
	"residencial-admin/internal/domain/fee"
	"residencial-admin/internal/domain/payment"
	"residencial-admin/internal/domain/reservation"
	"residencial-admin/internal/domain/user"
	"residencial-admin/internal/pkg/civil"
	"residencial-admin/internal/pkg/errs"
	"residencial-admin/internal/pkg/password"
)

type seedAccount struct {
	username string
	password string
	identity auth.Identity
}

var seedAccounts = []seedAccount{
	{
		username: "admin",
		password: "admin123",
		identity: auth.Identity{ID: "1", Role: auth.RoleAdmin, Name: "Administrador Principal"},
	},
	{
		username: "owner1",
		password: "owner123",
		identity: auth.Identity{ID: "2", Role: auth.RoleOwner, Name: "María González", Apartment: "Torre A - 301"},
	},
}

// Seed builds the demo building. Account passwords are hashed with the given bcrypt cost.
func Seed(cost int) (State, error) {
	accounts := make([]auth.Account, 0, len(seedAccounts))
	for _, a := range seedAccounts {
		hash, err := password.HashPasswordWithCost(a.password, cost)
		if err != nil {
			return State{}, errs.Wrapf(err, "hash password for %s", a.username)
		}
		accounts = append(accounts, auth.Account{Username: a.username, PasswordHash: hash, Identity: a.identity})
	}

	return State{
		Payments:     seedPayments(),
		Users:        seedUsers(),
		Reservations: seedReservations(),
		Fees:         seedFees(),
		Accounts:     accounts,
	}, nil
}

func seedPayments() []payment.Payment {
	return []payment.Payment{
		{ID: "1", Date: civil.MustParse("2024-01-15"), Apartment: "Torre A - 301", Owner: "María González",
			Concept: "Administración Enero", Amount: "$1,200,000", Status: payment.StatusPaid, Method: "Transferencia", Month: "Enero 2024"},
		{ID: "2", Date: civil.MustParse("2024-01-14"), Apartment: "Torre B - 205", Owner: "Carlos Ruiz",
			Concept: "Administración Enero", Amount: "$1,200,000", Status: payment.StatusPending, Method: payment.MethodNone, Month: "Enero 2024"},
		{ID: "3", Date: civil.MustParse("2024-01-13"), Apartment: "Torre A - 102", Owner: "Ana Martínez",
			Concept: "Administración Enero", Amount: "$1,350,000", Status: payment.StatusPaid, Method: "Efectivo", Month: "Enero 2024"},
		{ID: "4", Date: civil.MustParse("2024-01-12"), Apartment: "Torre C - 401", Owner: "Luis Pérez",
			Concept: "Administración Enero", Amount: "$1,200,000", Status: payment.StatusPaid, Method: "Cheque", Month: "Enero 2024"},
		{ID: "5", Date: civil.MustParse("2024-01-10"), Apartment: "Torre B - 105", Owner: "Pedro Silva",
			Concept: "Multa por ruido", Amount: "$150,000", Status: payment.StatusOverdue, Method: payment.MethodNone, Month: "Diciembre 2023"},
	}
}

func seedUsers() []user.User {
	return []user.User{
		{ID: "1", Name: "María González", Apartment: "Torre A - 301", Email: "maria.gonzalez@email.com",
			Phone: "+57 300 123 4567", Status: user.StatusActive, Role: user.DefaultRole, Balance: "$0"},
		{ID: "2", Name: "Carlos Ruiz", Apartment: "Torre B - 205", Email: "carlos.ruiz@email.com",
			Phone: "+57 301 234 5678", Status: user.StatusActive, Role: user.DefaultRole, Balance: "$1,200,000"},
		{ID: "3", Name: "Ana Martínez", Apartment: "Torre A - 102", Email: "ana.martinez@email.com",
			Phone: "+57 302 345 6789", Status: user.StatusActive, Role: user.DefaultRole, Balance: "$0"},
		{ID: "4", Name: "Luis Pérez", Apartment: "Torre C - 401", Email: "luis.perez@email.com",
			Phone: "+57 303 456 7890", Status: user.StatusActive, Role: user.DefaultRole, Balance: "$0"},
		{ID: "5", Name: "Pedro Silva", Apartment: "Torre B - 105", Email: "pedro.silva@email.com",
			Phone: "+57 304 567 8901", Status: user.StatusInactive, Role: user.DefaultRole, Balance: "$2,400,000"},
	}
}

func seedReservations() []reservation.Reservation {
	return []reservation.Reservation{
		{ID: "1", Date: civil.MustParse("2024-01-20"), Time: reservation.MustParseTimeRange("18:00 - 22:00"),
			Apartment: "Torre A - 301", Owner: "María González", Event: "Cumpleaños", Status: reservation.StatusPending, Attendees: 25},
		{ID: "2", Date: civil.MustParse("2024-01-22"), Time: reservation.MustParseTimeRange("19:00 - 23:00"),
			Apartment: "Torre B - 105", Owner: "Pedro Silva", Event: "Reunión familiar", Status: reservation.StatusApproved, Attendees: 15},
		{ID: "3", Date: civil.MustParse("2024-01-25"), Time: reservation.MustParseTimeRange("16:00 - 20:00"),
			Apartment: "Torre C - 202", Owner: "Laura Gómez", Event: "Celebración", Status: reservation.StatusPending, Attendees: 30},
		{ID: "4", Date: civil.MustParse("2023-12-25"), Time: reservation.MustParseTimeRange("19:00 - 23:00"),
			Apartment: "Torre A - 301", Owner: "María González", Event: "Celebración navideña", Status: reservation.StatusCompleted, Attendees: 20},
	}
}

func seedFees() []fee.Fee {
	return []fee.Fee{
		{ID: "1", Type: fee.TypeAdministration, Description: "Cuota mensual de administración", Amount: "$1,200,000",
			Frequency: fee.FrequencyMonthly, Status: fee.StatusActive, LastUpdate: civil.MustParse("2024-01-01")},
		{ID: "2", Type: fee.TypeFine, Description: "Multa por ruido excesivo", Amount: "$150,000",
			Frequency: fee.FrequencyPerEvent, Status: fee.StatusActive, LastUpdate: civil.MustParse("2023-12-15")},
		{ID: "3", Type: fee.TypeServices, Description: "Mantenimiento ascensores", Amount: "$50,000",
			Frequency: fee.FrequencyMonthly, Status: fee.StatusActive, LastUpdate: civil.MustParse("2024-01-01")},
		{ID: "4", Type: fee.TypeFine, Description: "Uso indebido de zonas comunes", Amount: "$200,000",
			Frequency: fee.FrequencyPerEvent, Status: fee.StatusActive, LastUpdate: civil.MustParse("2023-11-20")},
		{ID: "5", Type: fee.TypeAdministration, Description: "Cuota extraordinaria - Reparaciones", Amount: "$800,000",
			Frequency: fee.FrequencyOnce, Status: fee.StatusInactive, LastUpdate: civil.MustParse("2023-10-15")},
	}
}
