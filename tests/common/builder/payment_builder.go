//go:build unit || e2e

package builder

import (
	"residencial-admin/internal/domain/payment"
	reqdto "residencial-admin/internal/handler/dto/request"
	"residencial-admin/internal/pkg/civil"
)

type PaymentBuilder struct {
	ID        string
	Date      string
	Apartment string
	Owner     string
	Concept   string
	Amount    string
	Status    payment.Status
	Method    string
	Month     string
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		ID:        "p-1",
		Date:      "2026-10-05",
		Apartment: "Torre A - 301",
		Owner:     "María González",
		Concept:   "Cuota de administración",
		Amount:    "$1,200,000",
		Status:    payment.StatusPaid,
		Method:    "Transferencia",
		Month:     "Octubre 2026",
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) BuildDomain() payment.Payment {
	return payment.Payment{
		ID:        p.ID,
		Date:      civil.MustParse(p.Date),
		Apartment: p.Apartment,
		Owner:     p.Owner,
		Concept:   p.Concept,
		Amount:    p.Amount,
		Status:    p.Status,
		Method:    p.Method,
		Month:     p.Month,
	}
}

func (p *PaymentBuilder) BuildRequest() reqdto.CreatePaymentRequest {
	return reqdto.CreatePaymentRequest{
		Date:      p.Date,
		Apartment: p.Apartment,
		Owner:     p.Owner,
		Concept:   p.Concept,
		Amount:    p.Amount,
		Status:    string(p.Status),
		Method:    p.Method,
		Month:     p.Month,
	}
}

func (p *PaymentBuilder) BuildChargeRequest() reqdto.CreateChargeRequest {
	return reqdto.CreateChargeRequest{
		Apartment: p.Apartment,
		Concept:   p.Concept,
		Amount:    p.Amount,
	}
}

func (p *PaymentBuilder) WithID(id string) *PaymentBuilder {
	p.ID = id
	return p
}
