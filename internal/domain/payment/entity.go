package payment

import (
	"errors"
	"fmt"
	"strings"

	"residencial-admin/internal/pkg/civil"
	"residencial-admin/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid payment status")
	ErrMissingApartment = errors.New("apartment is required")
	ErrMissingConcept   = errors.New("concept is required")
	ErrInvalidAmount    = errors.New("amount must be a positive value")
	ErrDueDateInPast    = errors.New("due date is before the charge date")
)

type Status string

const (
	StatusPaid    Status = "Pagado"
	StatusPending Status = "Pendiente"
	StatusOverdue Status = "Vencido"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusOverdue:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// MethodNone marks a charge that has not been paid yet.
const MethodNone = "-"

// Payment is immutable except for its status.
type Payment struct {
	ID        string     `json:"id"`
	Date      civil.Date `json:"date"`
	Apartment string     `json:"apartment"`
	Owner     string     `json:"owner"`
	Concept   string     `json:"concept"`
	Amount    string     `json:"amount"`
	Status    Status     `json:"status"`
	Method    string     `json:"method"`
	Month     string     `json:"month"`

	// charges only
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

type Input struct {
	Date      civil.Date
	Apartment string
	Owner     string
	Concept   string
	Amount    string
	Status    Status
	Method    string
	Month     string
}

func NewPayment(in Input) (*Payment, error) {
	apartment := strings.TrimSpace(in.Apartment)
	if apartment == "" {
		return nil, ErrMissingApartment
	}
	concept := strings.TrimSpace(in.Concept)
	if concept == "" {
		return nil, ErrMissingConcept
	}
	amount, err := normalizeAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = StatusPaid
	}
	if !in.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	month := strings.TrimSpace(in.Month)
	if month == "" {
		month = in.Date.MonthLabel()
	}
	method := strings.TrimSpace(in.Method)
	if method == "" {
		method = MethodNone
	}

	return &Payment{
		ID:        uuid.NewString(),
		Date:      in.Date,
		Apartment: apartment,
		Owner:     strings.TrimSpace(in.Owner),
		Concept:   concept,
		Amount:    amount,
		Status:    in.Status,
		Method:    method,
		Month:     month,
	}, nil
}

type ChargeInput struct {
	Apartment   string
	Owner       string
	Concept     string
	Amount      string
	Description string
	DueDate     civil.Date
}

// NewCharge registers an amount owed by an apartment. It starts Pendiente with no method.
func NewCharge(today civil.Date, in ChargeInput) (*Payment, error) {
	if !in.DueDate.IsZero() && in.DueDate.Before(today) {
		return nil, ErrDueDateInPast
	}
	p, err := NewPayment(Input{
		Date:      today,
		Apartment: in.Apartment,
		Owner:     in.Owner,
		Concept:   in.Concept,
		Amount:    in.Amount,
		Status:    StatusPending,
		Method:    MethodNone,
	})
	if err != nil {
		return nil, err
	}
	p.Description = strings.TrimSpace(in.Description)
	if !in.DueDate.IsZero() {
		p.DueDate = in.DueDate.String()
	}
	return p, nil
}

func (p *Payment) UpdateStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	p.Status = status
	return nil
}

func normalizeAmount(s string) (string, error) {
	a, err := money.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if a.IsZero() || a.IsNegative() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return a.String(), nil
}
