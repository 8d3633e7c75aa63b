package bank

import (
	"fmt"

	"github.com/finbank-labs/currency_bank_app/internal/apperrors"
	"github.com/finbank-labs/currency_bank_app/internal/core/domain"
)

// CurrencyHolder is the capability surface shared by Bank and Account:
// currency activation bookkeeping plus the main-currency designation.
type CurrencyHolder interface {
	AddCurrency(c domain.Currency) error
	RemoveCurrency(c domain.Currency) error
	CurrencyExists(c domain.Currency) bool
	SetMainCurrency(c domain.Currency) error
	MainCurrency() (domain.Currency, error)
	AvailableCurrencies() []domain.Currency
}

// currencyRegistry tracks which currencies are active on its holder and which
// one is the main currency. Removed currencies are tombstoned (flagged
// inactive) rather than deleted, so historical entries stay addressable.
// Both Bank and Account embed one and layer their own rules on top.
type currencyRegistry struct {
	currencies map[domain.Currency]bool
	order      []domain.Currency
	main       domain.Currency
	mainSet    bool
}

func newCurrencyRegistry() currencyRegistry {
	return currencyRegistry{currencies: make(map[domain.Currency]bool)}
}

// AddCurrency activates c. The first currency ever added becomes the main
// currency when none is set yet.
func (r *currencyRegistry) AddCurrency(c domain.Currency) error {
	if r.CurrencyExists(c) {
		return fmt.Errorf("%w: the %s currency has already been added", apperrors.ErrCurrencyExists, c)
	}
	if _, seen := r.currencies[c]; !seen {
		r.order = append(r.order, c)
	}
	r.currencies[c] = true
	if !r.mainSet {
		return r.SetMainCurrency(c)
	}
	return nil
}

// RemoveCurrency tombstones c: the entry stays in the registry, flagged
// inactive. The main currency can never be removed.
func (r *currencyRegistry) RemoveCurrency(c domain.Currency) error {
	if !r.CurrencyExists(c) {
		return fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotExist, c)
	}
	if r.mainSet && r.main == c {
		return fmt.Errorf("%w: %s", apperrors.ErrCannotDeleteMainCurrency, c)
	}
	r.currencies[c] = false
	return nil
}

// CurrencyExists reports whether c is present and active. Tombstoned and
// never-added currencies both read false.
func (r *currencyRegistry) CurrencyExists(c domain.Currency) bool {
	return r.currencies[c]
}

// SetMainCurrency designates c as the main currency. Only an active currency
// may be designated.
func (r *currencyRegistry) SetMainCurrency(c domain.Currency) error {
	if !r.CurrencyExists(c) {
		return fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotExist, c)
	}
	r.main = c
	r.mainSet = true
	return nil
}

// MainCurrency returns the main currency, or ErrMainCurrencyNotSet when no
// currency has been added yet.
func (r *currencyRegistry) MainCurrency() (domain.Currency, error) {
	if !r.mainSet {
		return "", apperrors.ErrMainCurrencyNotSet
	}
	return r.main, nil
}

// AvailableCurrencies returns the active currencies in insertion order.
// A currency that is removed and later re-added keeps its original position.
func (r *currencyRegistry) AvailableCurrencies() []domain.Currency {
	available := make([]domain.Currency, 0, len(r.order))
	for _, c := range r.order {
		if r.currencies[c] {
			available = append(available, c)
		}
	}
	return available
}
