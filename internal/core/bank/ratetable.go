package bank

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finbank-labs/currency_bank_app/internal/apperrors"
	"github.com/finbank-labs/currency_bank_app/internal/core/domain"
)

// currencyChecker is the slice of the holder surface the rate table needs:
// rate endpoints must be currencies the owning bank currently supports.
type currencyChecker interface {
	CurrencyExists(c domain.Currency) bool
}

// ratePair is a directed currency relation. Forward and reverse rates live in
// independent slots keyed by ordered pair.
type ratePair struct {
	from domain.Currency
	to   domain.Currency
}

// RateTable holds directional exchange rates for the owning bank. SetRate
// writes the forward rate and its derived inverse in one update, so the table
// never holds a forward entry without its mirror. There is no transitive
// resolution: a missing directed pair is ErrRateNotFound even when a path
// through a third currency exists.
type RateTable struct {
	bank  currencyChecker
	rates map[ratePair]decimal.Decimal
}

func newRateTable(bank currencyChecker) *RateTable {
	return &RateTable{
		bank:  bank,
		rates: make(map[ratePair]decimal.Decimal),
	}
}

// SetRate stores rate for from→to and round(1/rate, 6) for to→from. The rate
// must be positive and both endpoints active at the bank.
func (t *RateTable) SetRate(from, to domain.Currency, rate decimal.Decimal) error {
	if rate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: exchange rate must be positive, got %s", apperrors.ErrValidation, rate)
	}
	if err := t.checkBankCurrencies(from, to); err != nil {
		return err
	}

	t.rates[ratePair{from: from, to: to}] = rate

	// Inverse at ten digits of division precision, stored at six.
	inverse := decimal.NewFromInt(1).DivRound(rate, 10)
	t.rates[ratePair{from: to, to: from}] = inverse.Round(6)
	return nil
}

// Rate returns the stored rate for the directed pair from→to.
func (t *RateTable) Rate(from, to domain.Currency) (decimal.Decimal, error) {
	if err := t.checkBankCurrencies(from, to); err != nil {
		return decimal.Zero, err
	}
	rate, ok := t.rates[ratePair{from: from, to: to}]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s/%s", apperrors.ErrRateNotFound, from, to)
	}
	return rate, nil
}

// Convert exchanges amount from one currency to another at the stored rate
// and returns the result as fresh Money, rounded to two decimal places.
// A from==to conversion still needs an explicit rate; there is no identity
// shortcut.
func (t *RateTable) Convert(from, to domain.Currency, amount decimal.Decimal) (*domain.Money, error) {
	rate, err := t.Rate(from, to)
	if err != nil {
		return nil, err
	}
	return domain.NewMoney(to, amount.Mul(rate).Round(2)), nil
}

func (t *RateTable) checkBankCurrencies(from, to domain.Currency) error {
	if !t.bank.CurrencyExists(from) {
		return fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotExist, from)
	}
	if !t.bank.CurrencyExists(to) {
		return fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotExist, to)
	}
	return nil
}
