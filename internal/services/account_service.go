package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bank-ledger-system/internal/generator"
	"bank-ledger-system/internal/ledger"
	"bank-ledger-system/internal/models"
	"bank-ledger-system/internal/storage"
)

// AccountServiceImpl реализует интерфейс AccountService
type AccountServiceImpl struct {
	accounts storage.AccountRepository
	entries  storage.LedgerRepository
	numbers  *generator.AccountNumberGenerator
}

// NewAccountService создает новый сервис счетов
func NewAccountService(accounts storage.AccountRepository, entries storage.LedgerRepository) AccountService {
	return &AccountServiceImpl{
		accounts: accounts,
		entries:  entries,
		numbers:  generator.NewAccountNumberGenerator(),
	}
}

// OpenAccount открывает счет с уникальным 12-значным номером
// и нулевым начальным балансом
func (s *AccountServiceImpl) OpenAccount(userID int64) (*models.Account, error) {
	var number string
	for {
		number = s.numbers.Generate()
		exists, err := s.accounts.AccountNumberExists(number)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	acc := &models.Account{
		OwnerUserID:   userID,
		AccountNumber: number,
		Balance:       decimal.Zero,
		Status:        models.AccountStatusActive,
	}

	id, err := s.accounts.CreateAccount(acc)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return s.accounts.GetAccountByID(id)
}

// GetAccount получает счет по id
func (s *AccountServiceImpl) GetAccount(accountID int64) (*models.Account, error) {
	acc, err := s.accounts.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ledger.ErrAccountNotFound
	}
	return acc, nil
}

// GetAccountsByUser получает счета пользователя (постранично)
func (s *AccountServiceImpl) GetAccountsByUser(userID int64, page, size int) ([]*models.Account, error) {
	limit, offset := pageToLimitOffset(page, size)
	return s.accounts.GetAccountsByUser(userID, limit, offset)
}

// SetAccountStatus административно меняет статус счета
func (s *AccountServiceImpl) SetAccountStatus(accountID int64, status string) error {
	switch status {
	case models.AccountStatusActive, models.AccountStatusInactive, models.AccountStatusFrozen:
	default:
		return ledger.ErrInvalidStatus
	}
	return s.accounts.UpdateAccountStatus(accountID, status)
}

// Deposit пополняет счет. Разрешено только владельцу счета.
func (s *AccountServiceImpl) Deposit(accountID, actingUserID int64, amount decimal.Decimal) (*models.Account, error) {
	if err := s.checkOwnership(accountID, actingUserID, amount); err != nil {
		return nil, err
	}
	return s.accounts.Deposit(accountID, amount)
}

// Withdraw снимает средства со счета. Разрешено только владельцу;
// платежеспособность проверяется атомарно в хранилище.
func (s *AccountServiceImpl) Withdraw(accountID, actingUserID int64, amount decimal.Decimal) (*models.Account, error) {
	if err := s.checkOwnership(accountID, actingUserID, amount); err != nil {
		return nil, err
	}
	return s.accounts.Withdraw(accountID, amount)
}

func (s *AccountServiceImpl) checkOwnership(accountID, actingUserID int64, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ledger.ErrInvalidAmount
	}

	acc, err := s.accounts.GetAccountByID(accountID)
	if err != nil {
		return err
	}
	if acc == nil {
		return ledger.ErrAccountNotFound
	}
	if acc.OwnerUserID != actingUserID {
		return ledger.ErrUnauthorized
	}
	return nil
}

// GetTransactions получает записи журнала по счету, новые первыми
func (s *AccountServiceImpl) GetTransactions(accountID int64, page, size int) ([]*models.LedgerEntry, error) {
	limit, offset := pageToLimitOffset(page, size)
	return s.entries.GetEntriesByAccount(accountID, limit, offset)
}

// GetHistory получает историю пользователя: каждая запись журнала
// с направлением относительно пользователя (DEBIT — SENT, CREDIT — RECEIVED)
func (s *AccountServiceImpl) GetHistory(userID int64, page, size int) ([]*models.HistoryEntry, error) {
	limit, offset := pageToLimitOffset(page, size)
	entries, err := s.entries.GetEntriesByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}

	history := make([]*models.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		direction := models.HistoryDirectionReceived
		if entry.Type == models.EntryTypeDebit {
			direction = models.HistoryDirectionSent
		}
		history = append(history, &models.HistoryEntry{
			ID:        entry.ID,
			AccountID: entry.AccountID,
			Amount:    entry.Amount,
			Direction: direction,
			Timestamp: entry.Timestamp,
			Status:    entry.Status,
		})
	}
	return history, nil
}

// GetDashboardSummary возвращает сводку для операциониста
func (s *AccountServiceImpl) GetDashboardSummary() (map[string]interface{}, error) {
	pending, err := s.entries.CountEntriesByStatus(models.EntryStatusPending)
	if err != nil {
		return nil, err
	}

	recent, err := s.entries.GetRecentEntries(5)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"pending_transactions": pending,
		"recent_transactions":  recent,
	}, nil
}

func pageToLimitOffset(page, size int) (limit, offset int) {
	if size <= 0 {
		size = 20
	}
	if page < 0 {
		page = 0
	}
	return size, page * size
}
