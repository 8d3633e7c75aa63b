package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount tagged with its currency. All arithmetic is decimal
// based; the stored amount is rounded to two decimal places after every
// mutation, intermediate math keeps the full precision of the operands.
type Money struct {
	currency Currency
	amount   decimal.Decimal
}

// NewMoney creates Money in the given currency. The amount is rounded to two
// decimal places on the way in.
func NewMoney(currency Currency, amount decimal.Decimal) *Money {
	return &Money{currency: currency, amount: amount.Round(2)}
}

func (m *Money) Currency() Currency {
	return m.currency
}

func (m *Money) Amount() decimal.Decimal {
	return m.amount
}

// Add increases the amount, rounding the stored result to two decimal places.
func (m *Money) Add(amount decimal.Decimal) {
	m.amount = m.amount.Add(amount).Round(2)
}

// Sub decreases the amount, rounding the stored result to two decimal places.
// Sufficiency is the caller's concern; Sub itself does not enforce a
// non-negative result.
func (m *Money) Sub(amount decimal.Decimal) {
	m.amount = m.amount.Sub(amount).Round(2)
}

// String renders the amount with its currency code, e.g. "56.67 EUR".
func (m *Money) String() string {
	return fmt.Sprintf("%s %s", m.amount, m.currency)
}
