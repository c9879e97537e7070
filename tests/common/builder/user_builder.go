//go:build unit || e2e

package builder

import (
	"residencial-admin/internal/domain/user"
	"residencial-admin/internal/handler/dto/request"
)

type UserBuilder struct {
	Name      string
	Apartment string
	Email     string
	Phone     string
	Role      string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:      "Laura Gómez",
		Apartment: "Torre C - 202",
		Email:     "laura.gomez@email.com",
		Phone:     "+57 305 678 9012",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(user.Input{
		Name:      u.Name,
		Apartment: u.Apartment,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
	})
}

func (u *UserBuilder) BuildRequest() request.CreateUserRequest {
	return request.CreateUserRequest{
		Name:      u.Name,
		Apartment: u.Apartment,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithApartment(apartment string) *UserBuilder {
	u.Apartment = apartment
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}
