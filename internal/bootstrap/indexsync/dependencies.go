package indexsync

import (
	"bank-ledger-system/config"
	"bank-ledger-system/internal/kafka"
	"bank-ledger-system/internal/logger"
	"bank-ledger-system/internal/models"
	"bank-ledger-system/internal/search"
)

// Dependencies содержит все зависимости для index sync service
type Dependencies struct {
	SearchClient  *search.Client
	KafkaConsumer kafka.Consumer
}

// InitializeDependencies инициализирует все зависимости для index sync service
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация Redis
	logger.Log.Info("connecting to Redis")
	searchClient, err := search.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Redis connection established")

	// Настройка обработчика Kafka событий
	handler := func(event *models.KafkaLedgerEvent) error {
		return processLedgerEvent(event, searchClient)
	}

	// Инициализация Kafka Consumer
	logger.Log.Info("connecting to Kafka")
	consumer, err := kafka.NewConsumer(cfg, handler)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Kafka consumer connected")

	return &Dependencies{
		SearchClient:  searchClient,
		KafkaConsumer: consumer,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaConsumer != nil {
		if err := d.KafkaConsumer.Close(); err != nil {
			return err
		}
	}
	if d.SearchClient != nil {
		if err := d.SearchClient.Close(); err != nil {
			return err
		}
	}
	return nil
}
