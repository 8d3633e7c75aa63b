package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrCurrencyExists indicates an attempt to add a currency that is already active on the target.
var ErrCurrencyExists = errors.New("currency already exists")

// ErrCurrencyNotExist indicates an operation on a currency that is not active on the target.
var ErrCurrencyNotExist = errors.New("currency does not exist")

// ErrMainCurrencyNotSet indicates that the main currency was queried before one was established.
var ErrMainCurrencyNotSet = errors.New("main currency is not set")

// ErrCannotDeleteMainCurrency indicates an attempt to deactivate the current main currency.
var ErrCannotDeleteMainCurrency = errors.New("cannot delete the main currency")

// ErrNotEnoughFunds indicates a withdrawal that exceeds the current balance.
var ErrNotEnoughFunds = errors.New("not enough funds")

// ErrRateNotFound indicates that no directed rate entry exists for the requested currency pair.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrClientExists indicates an attempt to register a client that is already registered.
var ErrClientExists = errors.New("client already exists")

// ErrClientNotExist indicates a lookup of a client that was never registered.
var ErrClientNotExist = errors.New("client does not exist")

// ErrFundsMustBeWithdrawnFirst indicates a currency removal attempted while its balance is still positive.
var ErrFundsMustBeWithdrawnFirst = errors.New("funds must be withdrawn first")
