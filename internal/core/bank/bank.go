package bank

import (
	"fmt"
	"log/slog"

	"github.com/finbank-labs/currency_bank_app/internal/apperrors"
	"github.com/finbank-labs/currency_bank_app/internal/core/domain"
)

// Bank is the central currency authority: it owns the canonical currency set,
// the rate table, registered clients and every account opened against it.
// Construct one per process or per test and pass it around explicitly.
//
// A Bank and its accounts assume a single logical actor: operations run to
// completion before the next begins and are not safe for concurrent use.
// Callers that expose a Bank to multiple goroutines must serialize every
// public operation behind one lock, because RemoveCurrency reads and writes
// many accounts in a single pass.
type Bank struct {
	currencyRegistry
	logger         *slog.Logger
	clients        map[string]*domain.Client
	clientAccounts map[string][]string
	accounts       []*Account
	rateTable      *RateTable
}

var _ CurrencyHolder = (*Bank)(nil)

// Option configures a Bank.
type Option func(*Bank)

// WithLogger sets the logger the bank reports currency removals with.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bank) {
		b.logger = logger
	}
}

// NewBank creates an empty bank with no currencies, clients or accounts.
func NewBank(opts ...Option) *Bank {
	b := &Bank{
		currencyRegistry: newCurrencyRegistry(),
		logger:           slog.Default(),
		clients:          make(map[string]*domain.Client),
		clientAccounts:   make(map[string][]string),
	}
	b.rateTable = newRateTable(b)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RateTable returns the bank's exchange rate table.
func (b *Bank) RateTable() *RateTable {
	return b.rateTable
}

// CreateAccount registers client with the bank and opens a new account bound
// to it. A client may be registered at most once.
func (b *Bank) CreateAccount(client *domain.Client) (*Account, error) {
	if _, ok := b.clients[client.ClientID]; ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrClientExists, client.ClientID)
	}

	account := newAccount(client, b)
	b.clients[client.ClientID] = client
	b.clientAccounts[client.ClientID] = append(b.clientAccounts[client.ClientID], account.id)
	b.accounts = append(b.accounts, account)

	b.logger.Info("account created",
		slog.String("account_id", account.id),
		slog.String("client_id", client.ClientID))
	return account, nil
}

// ClientAccounts returns the client's accounts in creation order.
func (b *Bank) ClientAccounts(client *domain.Client) ([]*Account, error) {
	if _, ok := b.clients[client.ClientID]; !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrClientNotExist, client.ClientID)
	}

	ids := b.clientAccounts[client.ClientID]
	accounts := make([]*Account, 0, len(ids))
	for _, id := range ids {
		for _, a := range b.accounts {
			if a.id == id {
				accounts = append(accounts, a)
			}
		}
	}
	return accounts, nil
}

// Accounts returns every account opened against the bank, in creation order.
func (b *Bank) Accounts() []*Account {
	accounts := make([]*Account, len(b.accounts))
	copy(accounts, b.accounts)
	return accounts
}

// Clients returns every registered client, in registration order.
func (b *Bank) Clients() []*domain.Client {
	seen := make(map[string]bool, len(b.clients))
	clients := make([]*domain.Client, 0, len(b.clients))
	for _, a := range b.accounts {
		if !seen[a.client.ClientID] {
			seen[a.client.ClientID] = true
			clients = append(clients, a.client)
		}
	}
	return clients
}

// RemoveCurrency deactivates c bank-wide. Every account holding c is swept
// first: the account is forced onto the bank's main currency, its entire c
// balance is withdrawn and redeposited converted into that main currency, and
// c is removed from the account. Each account is processed atomically; a
// failure partway through the account list is surfaced as-is and accounts
// already processed are not rolled back.
func (b *Bank) RemoveCurrency(c domain.Currency) error {
	if !b.CurrencyExists(c) {
		return fmt.Errorf("%w: %s", apperrors.ErrCurrencyNotExist, c)
	}
	bankMain, err := b.MainCurrency()
	if err != nil {
		return err
	}
	if bankMain == c {
		return fmt.Errorf("%w: %s", apperrors.ErrCannotDeleteMainCurrency, c)
	}

	for _, account := range b.accounts {
		if !account.CurrencyExists(c) {
			continue
		}
		if err := b.sweepAccount(account, c, bankMain); err != nil {
			b.logger.Error("currency removal cascade failed",
				slog.String("currency", c.String()),
				slog.String("account_id", account.id),
				slog.String("error", err.Error()))
			return fmt.Errorf("removing %s from account %s: %w", c, account.id, err)
		}
		b.logger.Info("account funds converted for currency removal",
			slog.String("currency", c.String()),
			slog.String("main_currency", bankMain.String()),
			slog.String("account_id", account.id))
	}

	b.currencies[c] = false
	b.logger.Info("currency removed", slog.String("currency", c.String()))
	return nil
}

// sweepAccount moves the account's entire c balance into the bank's main
// currency and removes c from the account. All fallible lookups run before
// the first mutation, so a failure leaves the account in its pre-sweep state.
func (b *Bank) sweepAccount(account *Account, c, bankMain domain.Currency) error {
	// The redeposit below converts c into bankMain; probe the rate up front
	// so a missing entry cannot leave a half-swept ledger behind.
	if _, err := b.rateTable.Rate(c, bankMain); err != nil {
		return err
	}

	if !account.CurrencyExists(bankMain) {
		if err := account.AddCurrency(bankMain); err != nil {
			return err
		}
	}
	// The bank's removal event overrides the account's own main-currency
	// choice.
	if err := account.SetMainCurrency(bankMain); err != nil {
		return err
	}

	balance, err := account.Balance(c)
	if err != nil {
		return err
	}
	funds, err := account.WithdrawBalance(c, balance)
	if err != nil {
		return err
	}
	if err := account.ReplenishBalance(bankMain, funds); err != nil {
		return err
	}
	return account.RemoveCurrency(c)
}
