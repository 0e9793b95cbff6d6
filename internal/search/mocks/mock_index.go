package mocks

import (
	"github.com/stretchr/testify/mock"

	"bank-ledger-system/internal/models"
)

// MockIndex является моком для search.IndexInterface
type MockIndex struct {
	mock.Mock
}

// SaveEntry мок для SaveEntry
func (m *MockIndex) SaveEntry(entry *models.LedgerEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

// GetEntry мок для GetEntry
func (m *MockIndex) GetEntry(entryID int64) (*models.LedgerEntry, error) {
	args := m.Called(entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LedgerEntry), args.Error(1)
}

// UpdateEntryStatus мок для UpdateEntryStatus
func (m *MockIndex) UpdateEntryStatus(entryID int64, status string) error {
	args := m.Called(entryID, status)
	return args.Error(0)
}

// GetPendingCount мок для GetPendingCount
func (m *MockIndex) GetPendingCount() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// Search мок для Search
func (m *MockIndex) Search(criteria *models.SearchCriteria) ([]*models.LedgerEntry, error) {
	args := m.Called(criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LedgerEntry), args.Error(1)
}
