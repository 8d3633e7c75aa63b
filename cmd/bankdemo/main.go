package main

import (
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/finbank-labs/currency_bank_app/internal/core/bank"
	"github.com/finbank-labs/currency_bank_app/internal/core/domain"
	"github.com/finbank-labs/currency_bank_app/internal/platform/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if err := run(logger, cfg); err != nil {
		logger.Error("Demo run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run replays a full currency lifecycle against a fresh bank: rate setup,
// deposits and withdrawals, a main-currency switch, rate edits and finally a
// bank-wide currency removal that cascades into the account.
func run(logger *slog.Logger, cfg *config.Config) error {
	b := bank.NewBank(bank.WithLogger(logger))

	for _, c := range []domain.Currency{domain.RUB, domain.USD, domain.EUR} {
		if err := b.AddCurrency(c); err != nil {
			return err
		}
	}

	rates := b.RateTable()
	if err := rates.SetRate(domain.EUR, domain.RUB, decimal.NewFromInt(80)); err != nil {
		return err
	}
	if err := rates.SetRate(domain.USD, domain.RUB, decimal.NewFromInt(70)); err != nil {
		return err
	}
	if err := rates.SetRate(domain.EUR, domain.USD, decimal.NewFromInt(1)); err != nil {
		return err
	}

	account, err := b.CreateAccount(domain.NewClient(cfg.ClientName))
	if err != nil {
		return err
	}
	for _, c := range []domain.Currency{domain.RUB, domain.USD, domain.EUR} {
		if err := account.AddCurrency(c); err != nil {
			return err
		}
	}
	if err := account.SetMainCurrency(domain.RUB); err != nil {
		return err
	}

	deposits := []*domain.Money{
		domain.NewMoney(domain.RUB, decimal.NewFromInt(1000)),
		domain.NewMoney(domain.EUR, decimal.NewFromInt(50)),
		domain.NewMoney(domain.USD, decimal.NewFromInt(50)),
	}
	for _, funds := range deposits {
		if err := account.ReplenishBalance(funds.Currency(), funds); err != nil {
			return err
		}
	}
	if _, err := account.WithdrawBalance(domain.USD, decimal.NewFromInt(10)); err != nil {
		return err
	}
	logBalances(logger, account)

	// Rates move, the account switches to euros as its main currency and
	// sweeps its roubles into it by hand.
	if err := rates.SetRate(domain.EUR, domain.RUB, decimal.NewFromInt(150)); err != nil {
		return err
	}
	if err := rates.SetRate(domain.USD, domain.RUB, decimal.NewFromInt(100)); err != nil {
		return err
	}
	if err := account.SetMainCurrency(domain.EUR); err != nil {
		return err
	}
	funds, err := account.WithdrawBalance(domain.RUB, decimal.NewFromInt(1000))
	if err != nil {
		return err
	}
	if err := account.ReplenishBalance(domain.EUR, funds); err != nil {
		return err
	}
	logBalances(logger, account)

	// The bank retires EUR and USD. The account held EUR as its main
	// currency, so the cascade forces it back onto the bank's main currency
	// and converts the leftover balances.
	if err := rates.SetRate(domain.EUR, domain.RUB, decimal.NewFromInt(120)); err != nil {
		return err
	}
	if err := b.RemoveCurrency(domain.EUR); err != nil {
		return err
	}
	if err := b.RemoveCurrency(domain.USD); err != nil {
		return err
	}

	balance, err := account.BalanceLabel("")
	if err != nil {
		return err
	}
	logger.Info("final account state",
		slog.String("account_id", account.ID()),
		slog.Any("available_currencies", account.AvailableCurrencies()),
		slog.String("balance", balance))
	return nil
}

func logBalances(logger *slog.Logger, account *bank.Account) {
	for _, c := range account.AvailableCurrencies() {
		label, err := account.BalanceLabel(c)
		if err != nil {
			logger.Error("Failed to read balance",
				slog.String("account_id", account.ID()),
				slog.String("currency", c.String()),
				slog.String("error", err.Error()))
			continue
		}
		logger.Info("balance",
			slog.String("account_id", account.ID()),
			slog.String("value", label))
	}
}
