package request

import (
	"strings"

	"residencial-admin/internal/domain/payment"
	"residencial-admin/internal/pkg/civil"
)

type CreatePaymentRequest struct {
	Date      string `json:"date,omitempty"`
	Apartment string `json:"apartment" binding:"required"`
	Owner     string `json:"owner"`
	Concept   string `json:"concept" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	Status    string `json:"status,omitempty"`
	Method    string `json:"method,omitempty"`
	Month     string `json:"month,omitempty"`
}

// ToDomain uses today when no date is sent.
func (r CreatePaymentRequest) ToDomain(today civil.Date) (payment.Input, error) {
	date := today
	if strings.TrimSpace(r.Date) != "" {
		parsed, err := civil.Parse(r.Date)
		if err != nil {
			return payment.Input{}, err
		}
		date = parsed
	}
	return payment.Input{
		Date:      date,
		Apartment: r.Apartment,
		Owner:     r.Owner,
		Concept:   r.Concept,
		Amount:    r.Amount,
		Status:    payment.Status(r.Status),
		Method:    r.Method,
		Month:     r.Month,
	}, nil
}

type CreateChargeRequest struct {
	Apartment   string  `json:"apartment" binding:"required"`
	Concept     string  `json:"concept" binding:"required"`
	Amount      string  `json:"amount" binding:"required"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
