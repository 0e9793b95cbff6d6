package mocks

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"bank-ledger-system/internal/models"
)

// MockAccountRepository является моком для storage.AccountRepository интерфейса
type MockAccountRepository struct {
	mock.Mock
}

// CreateAccount мок для CreateAccount
func (m *MockAccountRepository) CreateAccount(acc *models.Account) (int64, error) {
	args := m.Called(acc)
	return args.Get(0).(int64), args.Error(1)
}

// GetAccountByID мок для GetAccountByID
func (m *MockAccountRepository) GetAccountByID(id int64) (*models.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// GetAccountByNumber мок для GetAccountByNumber
func (m *MockAccountRepository) GetAccountByNumber(number string) (*models.Account, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// AccountNumberExists мок для AccountNumberExists
func (m *MockAccountRepository) AccountNumberExists(number string) (bool, error) {
	args := m.Called(number)
	return args.Bool(0), args.Error(1)
}

// GetAccountsByUser мок для GetAccountsByUser
func (m *MockAccountRepository) GetAccountsByUser(userID int64, limit, offset int) ([]*models.Account, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Account), args.Error(1)
}

// UpdateAccountStatus мок для UpdateAccountStatus
func (m *MockAccountRepository) UpdateAccountStatus(id int64, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// Deposit мок для Deposit
func (m *MockAccountRepository) Deposit(accountID int64, amount decimal.Decimal) (*models.Account, error) {
	args := m.Called(accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// Withdraw мок для Withdraw
func (m *MockAccountRepository) Withdraw(accountID int64, amount decimal.Decimal) (*models.Account, error) {
	args := m.Called(accountID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}
