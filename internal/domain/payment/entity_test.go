//go:build unit

package payment_test

import (
	"testing"

	"residencial-admin/internal/domain/payment"
	"residencial-admin/internal/pkg/civil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() payment.Input {
	return payment.Input{
		Date:      civil.MustParse("2024-01-15"),
		Apartment: "Torre A - 301",
		Owner:     "María González",
		Concept:   "Cuota de administración",
		Amount:    "450000",
		Method:    "Transferencia",
	}
}

func TestNewPayment(t *testing.T) {
	t.Run("defaults and normalisation", func(t *testing.T) {
		got, err := payment.NewPayment(validInput())
		require.NoError(t, err)

		want := &payment.Payment{
			Date:      civil.MustParse("2024-01-15"),
			Apartment: "Torre A - 301",
			Owner:     "María González",
			Concept:   "Cuota de administración",
			Amount:    "$450,000",
			Status:    payment.StatusPaid,
			Method:    "Transferencia",
			Month:     "Enero 2024",
		}
		if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(payment.Payment{}, "ID")); diff != "" {
			t.Errorf("payment mismatch (-want +got):\n%s", diff)
		}
		assert.NotEmpty(t, got.ID)
	})

	tests := []struct {
		name   string
		mutate func(*payment.Input)
		errIs  error
	}{
		{"formatted amount", func(in *payment.Input) { in.Amount = "$1,200,000" }, nil},
		{"zero amount", func(in *payment.Input) { in.Amount = "0" }, payment.ErrInvalidAmount},
		{"negative amount", func(in *payment.Input) { in.Amount = "-100" }, payment.ErrInvalidAmount},
		{"garbage amount", func(in *payment.Input) { in.Amount = "mucho" }, payment.ErrInvalidAmount},
		{"missing apartment", func(in *payment.Input) { in.Apartment = " " }, payment.ErrMissingApartment},
		{"missing concept", func(in *payment.Input) { in.Concept = "" }, payment.ErrMissingConcept},
		{"unknown status", func(in *payment.Input) { in.Status = "Anulado" }, payment.ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			got, err := payment.NewPayment(in)
			if tt.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, got)
				return
			}
			require.Nil(t, got)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNewCharge(t *testing.T) {
	today := civil.MustParse("2026-10-19")
	in := payment.ChargeInput{
		Apartment:   "Torre B - 205",
		Owner:       "Carlos Ruiz",
		Concept:     "Multa por ruido",
		Amount:      "150000",
		Description: "Fiesta después de las 22:00",
		DueDate:     civil.MustParse("2026-10-31"),
	}

	got, err := payment.NewCharge(today, in)
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPending, got.Status)
	assert.Equal(t, payment.MethodNone, got.Method)
	assert.Equal(t, "Octubre 2026", got.Month)
	assert.Equal(t, "$150,000", got.Amount)
	assert.Equal(t, "2026-10-31", got.DueDate)
	assert.Equal(t, today, got.Date)

	in.DueDate = civil.MustParse("2026-10-01")
	_, err = payment.NewCharge(today, in)
	assert.ErrorIs(t, err, payment.ErrDueDateInPast)
}

func TestPayment_UpdateStatus(t *testing.T) {
	p := &payment.Payment{Status: payment.StatusPending}
	require.NoError(t, p.UpdateStatus(payment.StatusOverdue))
	assert.Equal(t, payment.StatusOverdue, p.Status)

	require.ErrorIs(t, p.UpdateStatus("Anulado"), payment.ErrInvalidStatus)
	assert.Equal(t, payment.StatusOverdue, p.Status)
}
