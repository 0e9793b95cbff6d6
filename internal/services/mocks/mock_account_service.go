package mocks

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"bank-ledger-system/internal/models"
)

// MockAccountService является моком для services.AccountService интерфейса
type MockAccountService struct {
	mock.Mock
}

// OpenAccount мок для OpenAccount
func (m *MockAccountService) OpenAccount(userID int64) (*models.Account, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// GetAccount мок для GetAccount
func (m *MockAccountService) GetAccount(accountID int64) (*models.Account, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// GetAccountsByUser мок для GetAccountsByUser
func (m *MockAccountService) GetAccountsByUser(userID int64, page, size int) ([]*models.Account, error) {
	args := m.Called(userID, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Account), args.Error(1)
}

// SetAccountStatus мок для SetAccountStatus
func (m *MockAccountService) SetAccountStatus(accountID int64, status string) error {
	args := m.Called(accountID, status)
	return args.Error(0)
}

// Deposit мок для Deposit
func (m *MockAccountService) Deposit(accountID, actingUserID int64, amount decimal.Decimal) (*models.Account, error) {
	args := m.Called(accountID, actingUserID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// Withdraw мок для Withdraw
func (m *MockAccountService) Withdraw(accountID, actingUserID int64, amount decimal.Decimal) (*models.Account, error) {
	args := m.Called(accountID, actingUserID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// GetTransactions мок для GetTransactions
func (m *MockAccountService) GetTransactions(accountID int64, page, size int) ([]*models.LedgerEntry, error) {
	args := m.Called(accountID, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LedgerEntry), args.Error(1)
}

// GetHistory мок для GetHistory
func (m *MockAccountService) GetHistory(userID int64, page, size int) ([]*models.HistoryEntry, error) {
	args := m.Called(userID, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.HistoryEntry), args.Error(1)
}

// GetDashboardSummary мок для GetDashboardSummary
func (m *MockAccountService) GetDashboardSummary() (map[string]interface{}, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}
