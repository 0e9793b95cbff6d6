package mocks

import (
	"github.com/stretchr/testify/mock"

	"bank-ledger-system/internal/models"
)

// MockProducer является моком для kafka.Producer интерфейса
type MockProducer struct {
	mock.Mock
}

// SendLedgerEvent мок для SendLedgerEvent
func (m *MockProducer) SendLedgerEvent(event *models.KafkaLedgerEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// Close мок для Close
func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
