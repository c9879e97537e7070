package response

import (
	"residencial-admin/internal/domain/user"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Apartment string `json:"apartment"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
	Role      string `json:"role"`
	Balance   string `json:"balance"`
	HasDebt   bool   `json:"hasDebt"`
}

func FromUser(u user.User) UserResponse {
	var res UserResponse
	_ = copier.Copy(&res, &u)
	res.Status = string(u.Status)
	res.HasDebt = u.HasDebt()
	return res
}

func FromUsers(list []user.User) []UserResponse {
	res := make([]UserResponse, len(list))
	for i, u := range list {
		res[i] = FromUser(u)
	}
	return res
}
