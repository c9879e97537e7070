package user

import (
	"strings"

	"residencial-admin/internal/pkg/money"

	"github.com/google/uuid"
)

// User is a resident record of the building directory.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Apartment string `json:"apartment"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    Status `json:"status"`
	Role      string `json:"role"`
	Balance   string `json:"balance"`
}

type Input struct {
	Name      string
	Apartment string
	Email     string
	Phone     string
	Role      string
}

// NewUser registers an active resident with no debt.
func NewUser(in Input) (*User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrMissingName
	}
	apartment := strings.TrimSpace(in.Apartment)
	if apartment == "" {
		return nil, ErrMissingApartment
	}
	email, err := NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = DefaultRole
	}

	return &User{
		ID:        uuid.NewString(),
		Name:      name,
		Apartment: apartment,
		Email:     email.Value(),
		Phone:     strings.TrimSpace(in.Phone),
		Status:    StatusActive,
		Role:      role,
		Balance:   money.Zero,
	}, nil
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// HasDebt compares the balance string as stored; any value other than "$0" counts as debt.
func (u *User) HasDebt() bool {
	return u.Balance != money.Zero
}

// Matches is the directory search: case-insensitive on name, apartment and email.
func (u *User) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), q) ||
		strings.Contains(strings.ToLower(u.Apartment), q) ||
		strings.Contains(strings.ToLower(u.Email), q)
}
