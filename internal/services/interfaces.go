package services

import (
	"github.com/shopspring/decimal"

	"bank-ledger-system/internal/models"
)

// TransferEngine определяет интерфейс движка переводов: единственного
// компонента, которому разрешено мутировать балансы через пары записей журнала
type TransferEngine interface {
	// Transfer выполняет перевод от имени пользователя с проверкой владения
	Transfer(req *models.TransferRequest, actingUserID int64) (*models.TransferResult, error)

	// ExecuteScheduled выполняет перевод от имени планировщика: проверка
	// владения пропускается, доверие установлено при создании поручения
	ExecuteScheduled(fromAccountID int64, toAccountNumber string, amount decimal.Decimal) (*models.TransferResult, error)

	// SetEntryStatus переводит PENDING запись журнала в APPROVED или REJECTED
	// (хук для внешнего воркфлоу одобрения)
	SetEntryStatus(entryID int64, status string) (*models.LedgerEntry, error)
}

// AccountService определяет интерфейс операций со счетами вне движка
// переводов: открытие, пополнение/снятие, запросы отчетности
type AccountService interface {
	// OpenAccount открывает счет с уникальным сгенерированным номером
	OpenAccount(userID int64) (*models.Account, error)

	// GetAccount получает счет по id
	GetAccount(accountID int64) (*models.Account, error)

	// GetAccountsByUser получает счета пользователя (постранично)
	GetAccountsByUser(userID int64, page, size int) ([]*models.Account, error)

	// SetAccountStatus административно меняет статус счета
	SetAccountStatus(accountID int64, status string) error

	// Deposit пополняет счет владельца
	Deposit(accountID, actingUserID int64, amount decimal.Decimal) (*models.Account, error)

	// Withdraw снимает средства со счета владельца
	Withdraw(accountID, actingUserID int64, amount decimal.Decimal) (*models.Account, error)

	// GetTransactions получает записи журнала по счету (постранично)
	GetTransactions(accountID int64, page, size int) ([]*models.LedgerEntry, error)

	// GetHistory получает историю пользователя с направлением SENT/RECEIVED
	GetHistory(userID int64, page, size int) ([]*models.HistoryEntry, error)

	// GetDashboardSummary возвращает сводку для операциониста:
	// число ожидающих одобрения записей и последние операции
	GetDashboardSummary() (map[string]interface{}, error)
}
