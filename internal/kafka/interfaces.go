package kafka

import (
	"context"

	"bank-ledger-system/internal/models"
)

// Producer определяет интерфейс для отправки событий журнала в Kafka
type Producer interface {
	SendLedgerEvent(event *models.KafkaLedgerEvent) error

	Close() error
}

// Consumer определяет интерфейс для потребления событий журнала из Kafka
type Consumer interface {
	Start(ctx context.Context) error

	Close() error
}
