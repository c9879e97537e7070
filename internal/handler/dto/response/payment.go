package response

import (
	"residencial-admin/internal/domain/payment"

	"github.com/jinzhu/copier"
)

type PaymentResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Apartment   string `json:"apartment"`
	Owner       string `json:"owner"`
	Concept     string `json:"concept"`
	Amount      string `json:"amount"`
	Status      string `json:"status"`
	Method      string `json:"method"`
	Month       string `json:"month"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

func FromPayment(p payment.Payment) PaymentResponse {
	var res PaymentResponse
	_ = copier.Copy(&res, &p)
	res.Date = p.Date.String()
	res.Status = string(p.Status)
	return res
}

func FromPayments(list []payment.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(list))
	for i, p := range list {
		res[i] = FromPayment(p)
	}
	return res
}
