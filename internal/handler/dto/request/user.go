package request

import "residencial-admin/internal/domain/user"

type CreateUserRequest struct {
	Name      string `json:"name" binding:"required"`
	Apartment string `json:"apartment" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Role      string `json:"role,omitempty"`
}

func (r CreateUserRequest) ToDomain() user.Input {
	return user.Input{
		Name:      r.Name,
		Apartment: r.Apartment,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      r.Role,
	}
}
