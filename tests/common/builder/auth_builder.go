//go:build unit || e2e

package builder

import (
	reqdto "residencial-admin/internal/handler/dto/request"
)

// AuthBuilder starts from the seeded admin account.
type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "admin",
		Password: "admin123",
	}
}

// AsOwner switches to the seeded resident account.
func (a *AuthBuilder) AsOwner() *AuthBuilder {
	a.Username = "owner1"
	a.Password = "owner123"
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}
