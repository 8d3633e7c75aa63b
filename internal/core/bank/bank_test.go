package bank_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/finbank-labs/currency_bank_app/internal/apperrors"
	"github.com/finbank-labs/currency_bank_app/internal/core/bank"
	"github.com/finbank-labs/currency_bank_app/internal/core/domain"
)

type BankTestSuite struct {
	suite.Suite
	bank *bank.Bank
}

func (s *BankTestSuite) SetupTest() {
	s.bank = bank.NewBank()
	for _, c := range []domain.Currency{domain.RUB, domain.USD, domain.EUR} {
		s.Require().NoError(s.bank.AddCurrency(c))
	}
	rates := s.bank.RateTable()
	s.Require().NoError(rates.SetRate(domain.EUR, domain.RUB, decimal.NewFromInt(80)))
	s.Require().NoError(rates.SetRate(domain.USD, domain.RUB, decimal.NewFromInt(70)))
}

func (s *BankTestSuite) TestCreateAccountRegistersClientOnce() {
	client := domain.NewClient("Vlad")

	account, err := s.bank.CreateAccount(client)
	s.Require().NoError(err)
	s.NotEmpty(account.ID())
	s.Equal(client, account.Client())

	_, err = s.bank.CreateAccount(client)
	s.ErrorIs(err, apperrors.ErrClientExists)
}

func (s *BankTestSuite) TestClientAccountsUnknownClient() {
	_, err := s.bank.ClientAccounts(domain.NewClient("Nina"))
	s.ErrorIs(err, apperrors.ErrClientNotExist)
}

func (s *BankTestSuite) TestClientAccounts() {
	client := domain.NewClient("Vlad")
	account, err := s.bank.CreateAccount(client)
	s.Require().NoError(err)

	accounts, err := s.bank.ClientAccounts(client)
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal(account.ID(), accounts[0].ID())
}

func (s *BankTestSuite) TestAccountsAndClientsInCreationOrder() {
	first, err := s.bank.CreateAccount(domain.NewClient("Vlad"))
	s.Require().NoError(err)
	second, err := s.bank.CreateAccount(domain.NewClient("Nina"))
	s.Require().NoError(err)

	accounts := s.bank.Accounts()
	s.Require().Len(accounts, 2)
	s.Equal(first.ID(), accounts[0].ID())
	s.Equal(second.ID(), accounts[1].ID())

	clients := s.bank.Clients()
	s.Require().Len(clients, 2)
	s.Equal("Vlad", clients[0].Name)
	s.Equal("Nina", clients[1].Name)
}

func (s *BankTestSuite) TestRemoveMainCurrency() {
	err := s.bank.RemoveCurrency(domain.RUB)
	s.ErrorIs(err, apperrors.ErrCannotDeleteMainCurrency)
	s.Equal([]domain.Currency{domain.RUB, domain.USD, domain.EUR}, s.bank.AvailableCurrencies())
}

func (s *BankTestSuite) TestRemoveUnknownCurrency() {
	err := s.bank.RemoveCurrency(domain.Currency("GBP"))
	s.ErrorIs(err, apperrors.ErrCurrencyNotExist)
}

func (s *BankTestSuite) TestRemoveCurrencyCascadesIntoAccounts() {
	account, err := s.bank.CreateAccount(domain.NewClient("Vlad"))
	s.Require().NoError(err)
	s.Require().NoError(account.AddCurrency(domain.RUB))
	s.Require().NoError(account.AddCurrency(domain.EUR))
	s.Require().NoError(account.ReplenishBalance(domain.RUB, domain.NewMoney(domain.RUB, decimal.NewFromInt(100))))
	s.Require().NoError(account.ReplenishBalance(domain.EUR, domain.NewMoney(domain.EUR, decimal.NewFromInt(50))))

	s.Require().NoError(s.bank.RemoveCurrency(domain.EUR))

	s.Equal([]domain.Currency{domain.RUB, domain.USD}, s.bank.AvailableCurrencies())
	s.False(account.CurrencyExists(domain.EUR))

	// 50 EUR swept into roubles at 80.
	amount, err := account.Balance(domain.RUB)
	s.Require().NoError(err)
	s.Equal("4100", amount.String())

	main, err := account.MainCurrency()
	s.Require().NoError(err)
	s.Equal(domain.RUB, main)
}

func (s *BankTestSuite) TestCascadeReassignsAccountMainCurrency() {
	account, err := s.bank.CreateAccount(domain.NewClient("Vlad"))
	s.Require().NoError(err)
	s.Require().NoError(account.AddCurrency(domain.EUR))
	s.Require().NoError(account.ReplenishBalance(domain.EUR, domain.NewMoney(domain.EUR, decimal.NewFromInt(50))))

	// EUR is the account's main (and only) currency; the bank's removal
	// forces the account onto the bank's main currency.
	s.Require().NoError(s.bank.RemoveCurrency(domain.EUR))

	main, err := account.MainCurrency()
	s.Require().NoError(err)
	s.Equal(domain.RUB, main)
	s.Equal([]domain.Currency{domain.RUB}, account.AvailableCurrencies())

	amount, err := account.Balance("")
	s.Require().NoError(err)
	s.Equal("4000", amount.String())
}

func (s *BankTestSuite) TestCascadeSkipsAccountsWithoutTheCurrency() {
	account, err := s.bank.CreateAccount(domain.NewClient("Vlad"))
	s.Require().NoError(err)
	s.Require().NoError(account.AddCurrency(domain.RUB))
	s.Require().NoError(account.ReplenishBalance(domain.RUB, domain.NewMoney(domain.RUB, decimal.NewFromInt(100))))

	s.Require().NoError(s.bank.RemoveCurrency(domain.EUR))

	amount, err := account.Balance(domain.RUB)
	s.Require().NoError(err)
	s.Equal("100", amount.String())
	s.Equal([]domain.Currency{domain.RUB}, account.AvailableCurrencies())
}

func (s *BankTestSuite) TestCascadeWithZeroBalance() {
	account, err := s.bank.CreateAccount(domain.NewClient("Vlad"))
	s.Require().NoError(err)
	s.Require().NoError(account.AddCurrency(domain.RUB))
	s.Require().NoError(account.AddCurrency(domain.EUR))

	s.Require().NoError(s.bank.RemoveCurrency(domain.EUR))

	s.False(account.CurrencyExists(domain.EUR))
	amount, err := account.Balance(domain.RUB)
	s.Require().NoError(err)
	s.Equal("0", amount.String())
}

func (s *BankTestSuite) TestCascadeMissingRateLeavesAccountUntouched() {
	b := bank.NewBank()
	s.Require().NoError(b.AddCurrency(domain.RUB))
	s.Require().NoError(b.AddCurrency(domain.EUR))

	account, err := b.CreateAccount(domain.NewClient("Vlad"))
	s.Require().NoError(err)
	s.Require().NoError(account.AddCurrency(domain.EUR))
	s.Require().NoError(account.ReplenishBalance(domain.EUR, domain.NewMoney(domain.EUR, decimal.NewFromInt(50))))

	// No EUR→RUB rate: the removal fails and the account keeps its
	// pre-cascade state, main currency included.
	err = b.RemoveCurrency(domain.EUR)
	s.ErrorIs(err, apperrors.ErrRateNotFound)

	s.True(b.CurrencyExists(domain.EUR))
	s.True(account.CurrencyExists(domain.EUR))
	s.False(account.CurrencyExists(domain.RUB))

	main, mainErr := account.MainCurrency()
	s.Require().NoError(mainErr)
	s.Equal(domain.EUR, main)

	amount, balErr := account.Balance(domain.EUR)
	s.Require().NoError(balErr)
	s.Equal("50", amount.String())
}

func (s *BankTestSuite) TestReAddingRemovedCurrency() {
	s.Require().NoError(s.bank.RemoveCurrency(domain.EUR))
	s.Require().NoError(s.bank.AddCurrency(domain.EUR))

	s.True(s.bank.CurrencyExists(domain.EUR))
	s.Equal([]domain.Currency{domain.RUB, domain.USD, domain.EUR}, s.bank.AvailableCurrencies())
}

func TestBank(t *testing.T) {
	suite.Run(t, new(BankTestSuite))
}
