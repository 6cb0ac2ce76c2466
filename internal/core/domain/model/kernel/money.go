package kernel

import (
	"fmt"

	"farmadelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount in pesos with two decimal places, matching
// the DecimalField(max_digits=10, decimal_places=2) columns of the store.
type Money struct {
	amount decimal.Decimal
}

// Zero is the zero amount. Unlike other kernel value objects, the zero value
// of Money is valid.
var Zero = Money{amount: decimal.Zero}

// NewMoney rounds to cents and rejects negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount.Round(2)}, nil
}

// MoneyFromString parses strings such as "270.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoney panics on invalid input. Only for fixtures and tests.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns an error instead of a negative amount.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount.Sub(other.amount))
}

// Mul multiplies by a quantity.
func (m Money) Mul(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders two fixed decimals, e.g. "450.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Format renders the panel display form, e.g. "$450.00".
func (m Money) Format() string {
	return fmt.Sprintf("$%s", m.amount.StringFixed(2))
}
