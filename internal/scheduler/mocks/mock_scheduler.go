package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"bank-ledger-system/internal/models"
	"bank-ledger-system/internal/scheduler"
)

// MockScheduler является моком для scheduler.Service интерфейса
type MockScheduler struct {
	mock.Mock
}

// Schedule мок для Schedule
func (m *MockScheduler) Schedule(req *models.ScheduleRequest, actingUserID int64) (*models.ScheduledTransfer, error) {
	args := m.Called(req, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScheduledTransfer), args.Error(1)
}

// RunDueTransfers мок для RunDueTransfers
func (m *MockScheduler) RunDueTransfers(now time.Time) (*scheduler.RunReport, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scheduler.RunReport), args.Error(1)
}

// GetScheduledTransfers мок для GetScheduledTransfers
func (m *MockScheduler) GetScheduledTransfers(accountID int64, page, size int) ([]*models.ScheduledTransfer, error) {
	args := m.Called(accountID, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ScheduledTransfer), args.Error(1)
}

// Cancel мок для Cancel
func (m *MockScheduler) Cancel(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}
