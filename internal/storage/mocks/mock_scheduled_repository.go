package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"bank-ledger-system/internal/models"
)

// MockScheduledTransferRepository является моком для storage.ScheduledTransferRepository интерфейса
type MockScheduledTransferRepository struct {
	mock.Mock
}

// SaveScheduledTransfer мок для SaveScheduledTransfer
func (m *MockScheduledTransferRepository) SaveScheduledTransfer(st *models.ScheduledTransfer) (int64, error) {
	args := m.Called(st)
	return args.Get(0).(int64), args.Error(1)
}

// GetDueTransfers мок для GetDueTransfers
func (m *MockScheduledTransferRepository) GetDueTransfers(now time.Time) ([]*models.ScheduledTransfer, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ScheduledTransfer), args.Error(1)
}

// UpdateNextExecution мок для UpdateNextExecution
func (m *MockScheduledTransferRepository) UpdateNextExecution(id int64, next time.Time) error {
	args := m.Called(id, next)
	return args.Error(0)
}

// DeleteScheduledTransfer мок для DeleteScheduledTransfer
func (m *MockScheduledTransferRepository) DeleteScheduledTransfer(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// GetScheduledTransfersByAccount мок для GetScheduledTransfersByAccount
func (m *MockScheduledTransferRepository) GetScheduledTransfersByAccount(accountID int64, limit, offset int) ([]*models.ScheduledTransfer, error) {
	args := m.Called(accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ScheduledTransfer), args.Error(1)
}
