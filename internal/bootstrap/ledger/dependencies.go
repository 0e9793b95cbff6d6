package ledger

import (
	"go.uber.org/zap"

	"bank-ledger-system/config"
	"bank-ledger-system/internal/kafka"
	"bank-ledger-system/internal/logger"
	"bank-ledger-system/internal/scheduler"
	"bank-ledger-system/internal/search"
	"bank-ledger-system/internal/services"
	"bank-ledger-system/internal/storage"
	"bank-ledger-system/internal/storage/sqlite"
)

// Dependencies содержит все зависимости для ledger service
type Dependencies struct {
	StorageConn    *sqlite.SQLiteStorage
	Accounts       storage.AccountRepository
	Entries        storage.LedgerRepository
	Scheduled      storage.ScheduledTransferRepository
	KafkaProducer  kafka.Producer
	SearchClient   *search.Client
	TransferEngine services.TransferEngine
	AccountService services.AccountService
	Scheduler      scheduler.Service
}

// InitializeDependencies инициализирует все зависимости для ledger service
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	accounts := sqlite.NewAccountRepository(storageConn)
	entries := sqlite.NewLedgerRepository(storageConn)
	scheduled := sqlite.NewScheduledTransferRepository(storageConn)

	// Инициализация Kafka Producer
	logger.Log.Info("connecting to Kafka")
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Kafka producer connected")

	// Поисковый индекс нужен только для запросов; его недоступность
	// не мешает вести журнал
	searchClient, err := search.NewClient(cfg)
	if err != nil {
		logger.Log.Warn("Redis unavailable, search endpoint will be degraded", zap.Error(err))
		searchClient = nil
	} else {
		logger.Log.Info("Redis connection established")
	}

	engine := services.NewTransferEngine(accounts, entries, producer)
	accountService := services.NewAccountService(accounts, entries)
	sched := scheduler.NewScheduler(scheduled, accounts, engine)

	return &Dependencies{
		StorageConn:    storageConn,
		Accounts:       accounts,
		Entries:        entries,
		Scheduled:      scheduled,
		KafkaProducer:  producer,
		SearchClient:   searchClient,
		TransferEngine: engine,
		AccountService: accountService,
		Scheduler:      sched,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			return err
		}
	}
	if d.SearchClient != nil {
		if err := d.SearchClient.Close(); err != nil {
			return err
		}
	}
	if d.StorageConn != nil {
		if err := d.StorageConn.Close(); err != nil {
			return err
		}
	}
	return nil
}
