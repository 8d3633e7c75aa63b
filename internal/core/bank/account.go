package bank

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finbank-labs/currency_bank_app/internal/apperrors"
	"github.com/finbank-labs/currency_bank_app/internal/core/domain"
)

// Account is a per-currency balance ledger bound to a single bank. Currency
// bookkeeping comes from the embedded currencyRegistry; cross-currency
// deposits are converted through the bank's rate table. The account keeps a
// non-owning reference to its bank for those delegations.
type Account struct {
	currencyRegistry
	id     string
	client *domain.Client
	bank   *Bank
	funds  map[domain.Currency]*domain.Money
}

var _ CurrencyHolder = (*Account)(nil)

func newAccount(client *domain.Client, b *Bank) *Account {
	return &Account{
		currencyRegistry: newCurrencyRegistry(),
		id:               uuid.NewString(),
		client:           client,
		bank:             b,
		funds:            make(map[domain.Currency]*domain.Money),
	}
}

func (a *Account) ID() string {
	return a.id
}

// Client returns the owning client.
func (a *Account) Client() *domain.Client {
	return a.client
}

// AddCurrency activates c on the account. The currency must be active at the
// bank. A zero fund slot is created only when the currency was never added
// before; re-adding a tombstoned currency reuses its historical slot
// untouched.
func (a *Account) AddCurrency(c domain.Currency) error {
	if !a.bank.CurrencyExists(c) {
		return fmt.Errorf("%w: there is no such currency in the bank: %s", apperrors.ErrCurrencyNotExist, c)
	}
	if err := a.currencyRegistry.AddCurrency(c); err != nil {
		return err
	}
	if _, ok := a.funds[c]; !ok {
		a.funds[c] = domain.NewMoney(c, decimal.Zero)
	}
	return nil
}

// RemoveCurrency tombstones c on the account. A remaining positive balance
// must be withdrawn first; removal never sweeps funds on its own. The fund
// slot is kept for history.
func (a *Account) RemoveCurrency(c domain.Currency) error {
	if !a.CurrencyExists(c) {
		return fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotExist, c)
	}
	if main, err := a.MainCurrency(); err == nil && main == c {
		return fmt.Errorf("%w: %s", apperrors.ErrCannotDeleteMainCurrency, c)
	}
	if a.funds[c].Amount().IsPositive() {
		return fmt.Errorf("%w: %s balance is %s", apperrors.ErrFundsMustBeWithdrawnFirst, c, a.funds[c].Amount())
	}
	return a.currencyRegistry.RemoveCurrency(c)
}

// ReplenishBalance deposits funds into the balance held in currency. When the
// deposited funds are denominated differently they are converted through the
// bank's rate table first; a missing rate fails the deposit.
func (a *Account) ReplenishBalance(currency domain.Currency, funds *domain.Money) error {
	if !a.CurrencyExists(currency) {
		return fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotExist, currency)
	}

	amount := funds.Amount()
	if funds.Currency() != currency {
		converted, err := a.bank.RateTable().Convert(funds.Currency(), currency, funds.Amount())
		if err != nil {
			return err
		}
		amount = converted.Amount()
	}
	a.funds[currency].Add(amount)
	return nil
}

// Balance returns the amount held in currency. An empty currency means the
// account's main currency.
func (a *Account) Balance(currency domain.Currency) (decimal.Decimal, error) {
	c, err := a.balanceCurrency(currency)
	if err != nil {
		return decimal.Zero, err
	}
	return a.funds[c].Amount(), nil
}

// BalanceLabel is Balance with the currency code appended, e.g. "56.67 EUR".
func (a *Account) BalanceLabel(currency domain.Currency) (string, error) {
	c, err := a.balanceCurrency(currency)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s", a.funds[c].Amount(), c), nil
}

func (a *Account) balanceCurrency(currency domain.Currency) (domain.Currency, error) {
	if currency == "" {
		return a.MainCurrency()
	}
	if !a.CurrencyExists(currency) {
		return "", fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotExist, currency)
	}
	return currency, nil
}

// WithdrawBalance takes amount out of the currency balance and returns it as
// freshly minted Money, ready to be deposited elsewhere. The balance can
// never go negative.
func (a *Account) WithdrawBalance(currency domain.Currency, amount decimal.Decimal) (*domain.Money, error) {
	if !a.CurrencyExists(currency) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotExist, currency)
	}

	current := a.funds[currency]
	if amount.GreaterThan(current.Amount()) {
		return nil, fmt.Errorf("%w: requested %s %s, held %s", apperrors.ErrNotEnoughFunds, amount, currency, current.Amount())
	}
	current.Sub(amount)
	return domain.NewMoney(currency, amount), nil
}
