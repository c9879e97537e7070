// Package money normalises the peso amounts the building uses ("$1,200,000").
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is the balance string of a resident without debt.
const Zero = "$0"

var ErrInvalidAmount = errors.New("invalid amount")

type Amount struct {
	value decimal.Decimal
}

func FromInt(v int64) Amount {
	return Amount{value: decimal.NewFromInt(v)}
}

// Parse accepts plain numbers ("1200000", "1200000.50") and formatted amounts ("$1,200,000").
func Parse(s string) (Amount, error) {
	cleaned := strings.TrimSpace(s)
	neg := strings.HasPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return Amount{}, ErrInvalidAmount
	}

	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Amount{}, ErrInvalidAmount
	}
	if neg {
		v = v.Neg()
	}
	return Amount{value: v}, nil
}

// Normalize parses s and renders it back in the canonical "$1,200,000" form.
func Normalize(s string) (string, error) {
	a, err := Parse(s)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

func (a Amount) Decimal() decimal.Decimal { return a.value }
func (a Amount) IsZero() bool             { return a.value.IsZero() }
func (a Amount) IsNegative() bool         { return a.value.IsNegative() }

func (a Amount) Add(o Amount) Amount {
	return Amount{value: a.value.Add(o.value)}
}

func (a Amount) String() string {
	abs := a.value.Abs()
	fixed := abs.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if a.value.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(groupThousands(intPart))
	if frac != "00" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
