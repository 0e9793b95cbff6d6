package mocks

import (
	"github.com/stretchr/testify/mock"

	"bank-ledger-system/internal/models"
	"bank-ledger-system/internal/storage"
)

// MockLedgerRepository является моком для storage.LedgerRepository интерфейса
type MockLedgerRepository struct {
	mock.Mock
}

// ApplyTransfer мок для ApplyTransfer
func (m *MockLedgerRepository) ApplyTransfer(app *storage.TransferApplication) (*models.LedgerEntry, *models.LedgerEntry, error) {
	args := m.Called(app)
	var debit, credit *models.LedgerEntry
	if args.Get(0) != nil {
		debit = args.Get(0).(*models.LedgerEntry)
	}
	if args.Get(1) != nil {
		credit = args.Get(1).(*models.LedgerEntry)
	}
	return debit, credit, args.Error(2)
}

// GetEntryByID мок для GetEntryByID
func (m *MockLedgerRepository) GetEntryByID(id int64) (*models.LedgerEntry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LedgerEntry), args.Error(1)
}

// UpdateEntryStatus мок для UpdateEntryStatus
func (m *MockLedgerRepository) UpdateEntryStatus(id int64, status string) (*models.LedgerEntry, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LedgerEntry), args.Error(1)
}

// GetEntriesByAccount мок для GetEntriesByAccount
func (m *MockLedgerRepository) GetEntriesByAccount(accountID int64, limit, offset int) ([]*models.LedgerEntry, error) {
	args := m.Called(accountID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LedgerEntry), args.Error(1)
}

// GetEntriesByUser мок для GetEntriesByUser
func (m *MockLedgerRepository) GetEntriesByUser(userID int64, limit, offset int) ([]*models.LedgerEntry, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LedgerEntry), args.Error(1)
}

// GetRecentEntries мок для GetRecentEntries
func (m *MockLedgerRepository) GetRecentEntries(limit int) ([]*models.LedgerEntry, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LedgerEntry), args.Error(1)
}

// CountEntriesByStatus мок для CountEntriesByStatus
func (m *MockLedgerRepository) CountEntriesByStatus(status string) (int, error) {
	args := m.Called(status)
	return args.Int(0), args.Error(1)
}
