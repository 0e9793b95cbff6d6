package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bank-ledger-system/internal/kafka"
	"bank-ledger-system/internal/ledger"
	"bank-ledger-system/internal/logger"
	"bank-ledger-system/internal/models"
	"bank-ledger-system/internal/storage"
)

// TransferEngineImpl реализует интерфейс TransferEngine
type TransferEngineImpl struct {
	accounts storage.AccountRepository
	entries  storage.LedgerRepository
	producer kafka.Producer
}

// NewTransferEngine создает новый движок переводов
func NewTransferEngine(accounts storage.AccountRepository, entries storage.LedgerRepository, producer kafka.Producer) TransferEngine {
	return &TransferEngineImpl{
		accounts: accounts,
		entries:  entries,
		producer: producer,
	}
}

// Transfer выполняет перевод от имени пользователя.
// Порядок валидации фиксирован, первая ошибка выигрывает:
// сумма, класс перевода, счет-источник, владение, счет-назначение,
// платежеспособность (уже внутри атомарной транзакции хранилища).
func (s *TransferEngineImpl) Transfer(req *models.TransferRequest, actingUserID int64) (*models.TransferResult, error) {
	return s.transfer(req, actingUserID, false)
}

// ExecuteScheduled выполняет перевод от имени планировщика: проверка владения
// пропускается, источник берется из сохраненного поручения
func (s *TransferEngineImpl) ExecuteScheduled(fromAccountID int64, toAccountNumber string, amount decimal.Decimal) (*models.TransferResult, error) {
	req := &models.TransferRequest{
		FromAccountID:   fromAccountID,
		ToAccountNumber: toAccountNumber,
		Amount:          amount,
		TransferClass:   ledger.ClassPermanent,
	}
	return s.transfer(req, 0, true)
}

func (s *TransferEngineImpl) transfer(req *models.TransferRequest, actingUserID int64, scheduled bool) (*models.TransferResult, error) {
	if !req.Amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}

	fee, err := ledger.Fee(req.TransferClass, req.Amount)
	if err != nil {
		return nil, err
	}

	source, err := s.accounts.GetAccountByID(req.FromAccountID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, ledger.ErrAccountNotFound
	}

	if !scheduled && source.OwnerUserID != actingUserID {
		return nil, ledger.ErrUnauthorized
	}

	dest, err := s.resolveDestination(req)
	if err != nil {
		return nil, err
	}

	status := ledger.SettlementStatus(req.Amount)

	// Проверка баланса, мутация обоих счетов и пара записей журнала —
	// одна атомарная операция хранилища; при любой ошибке балансы
	// и журнал остаются нетронутыми
	debit, credit, err := s.entries.ApplyTransfer(&storage.TransferApplication{
		FromAccountID: source.ID,
		ToAccountID:   dest.ID,
		Amount:        req.Amount,
		Fee:           fee,
		Status:        status,
		Timestamp:     time.Now().UTC(),
	})
	if err != nil {
		logger.LogEvent(logger.EventTransferFailed, "ledger-service", "engine", map[string]interface{}{
			"from_account_id": source.ID,
			"to_account_id":   dest.ID,
			"amount":          req.Amount.String(),
			"error":           err.Error(),
		})
		return nil, err
	}

	logger.LogEvent(logger.EventEntriesRecorded, "ledger-service", "sqlite", map[string]interface{}{
		"debit_entry_id":  debit.ID,
		"credit_entry_id": credit.ID,
		"amount":          req.Amount.String(),
		"fee":             fee.String(),
		"status":          status,
	})

	// Durable-запись уже совершена и авторитетна; синхронизация индекса
	// best-effort и не влияет на результат перевода
	s.forwardToIndex(debit, credit)

	logger.LogEvent(logger.EventTransferCompleted, "ledger-service", "engine", map[string]interface{}{
		"from_account_id": source.ID,
		"to_account_id":   dest.ID,
		"amount":          req.Amount.String(),
		"fee":             fee.String(),
		"status":          status,
		"scheduled":       scheduled,
	})

	return &models.TransferResult{
		DebitEntry:   debit,
		CreditEntry:  credit,
		Fee:          fee,
		TotalDebited: req.Amount.Add(fee),
		Status:       status,
	}, nil
}

// resolveDestination находит счет-назначение по id или по номеру счета,
// в зависимости от соглашения вызывающей стороны
func (s *TransferEngineImpl) resolveDestination(req *models.TransferRequest) (*models.Account, error) {
	var dest *models.Account
	var err error

	if req.ToAccountID != 0 {
		dest, err = s.accounts.GetAccountByID(req.ToAccountID)
	} else {
		dest, err = s.accounts.GetAccountByNumber(req.ToAccountNumber)
	}
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, ledger.ErrAccountNotFound
	}
	return dest, nil
}

// SetEntryStatus переводит PENDING запись журнала в APPROVED или REJECTED.
// Отклонение меняет только статус: средства не возвращаются,
// исправления делаются встречными записями.
func (s *TransferEngineImpl) SetEntryStatus(entryID int64, status string) (*models.LedgerEntry, error) {
	if status != models.EntryStatusApproved && status != models.EntryStatusRejected {
		return nil, ledger.ErrInvalidStatus
	}

	entry, err := s.entries.UpdateEntryStatus(entryID, status)
	if err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventStatusChanged, "ledger-service", "sqlite", map[string]interface{}{
		"entry_id": entry.ID,
		"status":   status,
	})

	s.forwardStatusChange(entry)
	return entry, nil
}

func (s *TransferEngineImpl) forwardToIndex(entries ...*models.LedgerEntry) {
	for _, entry := range entries {
		s.sendEvent(models.EventTypeEntryRecorded, entry)
	}
}

func (s *TransferEngineImpl) forwardStatusChange(entry *models.LedgerEntry) {
	s.sendEvent(models.EventTypeStatusChanged, entry)
}

func (s *TransferEngineImpl) sendEvent(eventType string, entry *models.LedgerEntry) {
	event := &models.KafkaLedgerEvent{
		EventID:   "evt_" + uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Data: models.KafkaLedgerData{
			EntryID:     entry.ID,
			AccountID:   entry.AccountID,
			OwnerUserID: entry.OwnerUserID,
			Amount:      entry.Amount,
			Type:        entry.Type,
			Timestamp:   entry.Timestamp,
			Status:      entry.Status,
		},
	}

	if err := s.producer.SendLedgerEvent(event); err != nil {
		// Журнал уже записан и остается источником истины
		logger.Log.Warn("index sync forward failed",
			zap.Int64("entry_id", entry.ID),
			zap.Error(err),
		)
		logger.LogEvent(logger.EventIndexSyncFailed, "ledger-service", "kafka", map[string]interface{}{
			"entry_id": entry.ID,
			"error":    err.Error(),
		})
	}
}
