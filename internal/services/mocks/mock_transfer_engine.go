package mocks

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"bank-ledger-system/internal/models"
)

// MockTransferEngine является моком для services.TransferEngine интерфейса
type MockTransferEngine struct {
	mock.Mock
}

// Transfer мок для Transfer
func (m *MockTransferEngine) Transfer(req *models.TransferRequest, actingUserID int64) (*models.TransferResult, error) {
	args := m.Called(req, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransferResult), args.Error(1)
}

// ExecuteScheduled мок для ExecuteScheduled
func (m *MockTransferEngine) ExecuteScheduled(fromAccountID int64, toAccountNumber string, amount decimal.Decimal) (*models.TransferResult, error) {
	args := m.Called(fromAccountID, toAccountNumber, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransferResult), args.Error(1)
}

// SetEntryStatus мок для SetEntryStatus
func (m *MockTransferEngine) SetEntryStatus(entryID int64, status string) (*models.LedgerEntry, error) {
	args := m.Called(entryID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LedgerEntry), args.Error(1)
}
