package fee

import (
	"errors"
	"fmt"
	"strings"

	"residencial-admin/internal/pkg/civil"
	"residencial-admin/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidType        = errors.New("invalid fee type")
	ErrInvalidFrequency   = errors.New("invalid fee frequency")
	ErrInvalidStatus      = errors.New("invalid fee status")
	ErrInvalidAmount      = errors.New("amount must be a positive value")
	ErrMissingDescription = errors.New("description is required")
)

type Type string

const (
	TypeAdministration Type = "Administración"
	TypeFine           Type = "Multa"
	TypeServices       Type = "Servicios"
	TypeMaintenance    Type = "Mantenimiento"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeAdministration, TypeFine, TypeServices, TypeMaintenance:
		return true
	default:
		return false
	}
}

type Frequency string

const (
	FrequencyMonthly    Frequency = "Mensual"
	FrequencyQuarterly  Frequency = "Trimestral"
	FrequencySemiannual Frequency = "Semestral"
	FrequencyAnnual     Frequency = "Anual"
	FrequencyPerEvent   Frequency = "Por evento"
	FrequencyOnce       Frequency = "Única"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencySemiannual,
		FrequencyAnnual, FrequencyPerEvent, FrequencyOnce:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusActive   Status = "Activa"
	StatusInactive Status = "Inactiva"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusActive, StatusInactive:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// Fee is an entry of the building's fee schedule.
type Fee struct {
	ID          string     `json:"id"`
	Type        Type       `json:"type"`
	Description string     `json:"description"`
	Amount      string     `json:"amount"`
	Frequency   Frequency  `json:"frequency"`
	Status      Status     `json:"status"`
	LastUpdate  civil.Date `json:"lastUpdate"`
}

func NewFee(today civil.Date, typ Type, description, amount string, frequency Frequency) (*Fee, error) {
	if !typ.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, typ)
	}
	if !frequency.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFrequency, frequency)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrMissingDescription
	}
	a, err := money.Parse(amount)
	if err != nil || a.IsZero() || a.IsNegative() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	return &Fee{
		ID:          uuid.NewString(),
		Type:        typ,
		Description: description,
		Amount:      a.String(),
		Frequency:   frequency,
		Status:      StatusActive,
		LastUpdate:  today,
	}, nil
}

func (f *Fee) SetStatus(status Status, today civil.Date) error {
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}
	f.Status = status
	f.LastUpdate = today
	return nil
}
