package scheduler

import (
	"time"

	"go.uber.org/zap"

	"bank-ledger-system/internal/ledger"
	"bank-ledger-system/internal/logger"
	"bank-ledger-system/internal/models"
	"bank-ledger-system/internal/services"
	"bank-ledger-system/internal/storage"
)

// RunReport содержит итог одного прохода планировщика
type RunReport struct {
	Due      int `json:"due"`
	Executed int `json:"executed"`
	Failed   int `json:"failed"`
	Expired  int `json:"expired"`
}

// Service определяет интерфейс планировщика регулярных переводов
type Service interface {
	// Schedule создает постоянное поручение с проверкой владения источником
	Schedule(req *models.ScheduleRequest, actingUserID int64) (*models.ScheduledTransfer, error)

	// RunDueTransfers исполняет все поручения с датой исполнения раньше now
	RunDueTransfers(now time.Time) (*RunReport, error)

	// GetScheduledTransfers получает поручения, затрагивающие счет
	GetScheduledTransfers(accountID int64, page, size int) ([]*models.ScheduledTransfer, error)

	// Cancel удаляет поручение
	Cancel(id int64) error
}

// SchedulerImpl реализует интерфейс Service. Единственный писатель
// состояния поручений: движок переводов их никогда не трогает.
type SchedulerImpl struct {
	transfers storage.ScheduledTransferRepository
	accounts  storage.AccountRepository
	engine    services.TransferEngine
	now       func() time.Time
}

// NewScheduler создает новый планировщик регулярных переводов
func NewScheduler(transfers storage.ScheduledTransferRepository, accounts storage.AccountRepository, engine services.TransferEngine) *SchedulerImpl {
	return &SchedulerImpl{
		transfers: transfers,
		accounts:  accounts,
		engine:    engine,
		now:       time.Now,
	}
}

// Schedule создает постоянное поручение. Владение счетом-источником
// проверяется здесь один раз: исполнение поручения больше не требует
// проверки пользователя. Первое исполнение всегда в будущем:
// now + одна единица частоты. Записи журнала при создании не пишутся.
func (s *SchedulerImpl) Schedule(req *models.ScheduleRequest, actingUserID int64) (*models.ScheduledTransfer, error) {
	if !req.Amount.IsPositive() {
		return nil, ledger.ErrInvalidAmount
	}
	if !ledger.IsValidFrequency(req.Frequency) {
		return nil, ledger.ErrInvalidFrequency
	}

	source, err := s.accounts.GetAccountByID(req.FromAccountID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, ledger.ErrAccountNotFound
	}
	if source.OwnerUserID != actingUserID {
		return nil, ledger.ErrUnauthorized
	}

	// Назначение разрешается один раз, идентичность фиксируется по id
	var dest *models.Account
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

	next, err := ledger.NextExecution(s.now().UTC(), req.Frequency)
	if err != nil {
		return nil, err
	}

	st := &models.ScheduledTransfer{
		FromAccountID:     source.ID,
		ToAccountID:       dest.ID,
		Amount:            req.Amount,
		Frequency:         req.Frequency,
		NextExecutionDate: next,
		EndDate:           req.EndDate,
	}

	id, err := s.transfers.SaveScheduledTransfer(st)
	if err != nil {
		return nil, err
	}
	st.ID = id

	logger.LogEvent(logger.EventIntentScheduled, "ledger-service", "scheduler", map[string]interface{}{
		"scheduled_transfer_id": id,
		"from_account_id":       st.FromAccountID,
		"to_account_id":         st.ToAccountID,
		"amount":                st.Amount.String(),
		"frequency":             st.Frequency,
		"next_execution_date":   st.NextExecutionDate,
	})

	return st, nil
}

// RunDueTransfers исполняет все поручения, чья дата исполнения раньше now,
// каждое независимо. Семантика at-least-once: при любой ошибке дата
// исполнения не сдвигается, и поручение будет повторено на следующем
// срабатывании таймера.
func (s *SchedulerImpl) RunDueTransfers(now time.Time) (*RunReport, error) {
	due, err := s.transfers.GetDueTransfers(now)
	if err != nil {
		return nil, err
	}

	report := &RunReport{Due: len(due)}

	for _, st := range due {
		if st.EndDate != nil && st.EndDate.Before(now) {
			// Срок поручения истек: исполнение прекращается
			if err := s.transfers.DeleteScheduledTransfer(st.ID); err != nil {
				logger.Log.Error("failed to delete expired scheduled transfer",
					zap.Int64("scheduled_transfer_id", st.ID),
					zap.Error(err),
				)
				report.Failed++
				continue
			}
			report.Expired++
			continue
		}

		if err := s.executeOne(st); err != nil {
			// Дата исполнения не сдвигается: поручение остается due
			// и будет повторено на следующем проходе
			logger.Log.Warn("scheduled transfer failed, will retry on next run",
				zap.Int64("scheduled_transfer_id", st.ID),
				zap.Error(err),
			)
			logger.LogEvent(logger.EventIntentFailed, "ledger-service", "scheduler", map[string]interface{}{
				"scheduled_transfer_id": st.ID,
				"error":                 err.Error(),
			})
			report.Failed++
			continue
		}
		report.Executed++
	}

	logger.LogEvent(logger.EventSchedulerRun, "ledger-service", "scheduler", map[string]interface{}{
		"due":      report.Due,
		"executed": report.Executed,
		"failed":   report.Failed,
		"expired":  report.Expired,
	})

	return report, nil
}

// executeOne исполняет одно поручение и сдвигает его дату исполнения
func (s *SchedulerImpl) executeOne(st *models.ScheduledTransfer) error {
	dest, err := s.accounts.GetAccountByID(st.ToAccountID)
	if err != nil {
		return err
	}
	if dest == nil {
		return ledger.ErrAccountNotFound
	}

	if _, err := s.engine.ExecuteScheduled(st.FromAccountID, dest.AccountNumber, st.Amount); err != nil {
		return err
	}

	// Сдвиг от сохраненной даты, а не от now: расписание не дрейфует
	next, err := ledger.NextExecution(st.NextExecutionDate, st.Frequency)
	if err != nil {
		return err
	}

	if err := s.transfers.UpdateNextExecution(st.ID, next); err != nil {
		return err
	}

	logger.LogEvent(logger.EventIntentAdvanced, "ledger-service", "scheduler", map[string]interface{}{
		"scheduled_transfer_id": st.ID,
		"next_execution_date":   next,
	})
	return nil
}

// GetScheduledTransfers получает поручения, затрагивающие счет (постранично)
func (s *SchedulerImpl) GetScheduledTransfers(accountID int64, page, size int) ([]*models.ScheduledTransfer, error) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	return s.transfers.GetScheduledTransfersByAccount(accountID, size, page*size)
}

// Cancel удаляет поручение
func (s *SchedulerImpl) Cancel(id int64) error {
	return s.transfers.DeleteScheduledTransfer(id)
}
