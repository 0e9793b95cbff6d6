package storage

import (
	"time"

	"github.com/shopspring/decimal"

	"bank-ledger-system/internal/models"
)

// TransferApplication описывает эффект одного перевода, применяемый к
// хранилищу как единая атомарная операция: проверка баланса, две мутации
// балансов и две записи журнала (DEBIT, затем CREDIT) с общим timestamp.
type TransferApplication struct {
	FromAccountID int64
	ToAccountID   int64
	Amount        decimal.Decimal
	Fee           decimal.Decimal
	Status        string
	Timestamp     time.Time
}

// AccountRepository определяет интерфейс для работы со счетами в хранилище.
// Методы Get* возвращают nil, nil, если счет не найден.
type AccountRepository interface {
	// CreateAccount сохраняет новый счет и возвращает его id
	CreateAccount(acc *models.Account) (int64, error)

	// GetAccountByID получает счет по id
	GetAccountByID(id int64) (*models.Account, error)

	// GetAccountByNumber получает счет по номеру счета
	GetAccountByNumber(number string) (*models.Account, error)

	// AccountNumberExists проверяет занятость номера счета
	AccountNumberExists(number string) (bool, error)

	// GetAccountsByUser получает счета пользователя (постранично)
	GetAccountsByUser(userID int64, limit, offset int) ([]*models.Account, error)

	// UpdateAccountStatus административно меняет статус счета
	UpdateAccountStatus(id int64, status string) error

	// Deposit атомарно увеличивает баланс счета
	Deposit(accountID int64, amount decimal.Decimal) (*models.Account, error)

	// Withdraw атомарно уменьшает баланс счета с проверкой платежеспособности
	Withdraw(accountID int64, amount decimal.Decimal) (*models.Account, error)
}

// LedgerRepository определяет интерфейс для журнала транзакций.
// Журнал append-only: записи не редактируются, единственное исключение —
// перевод PENDING записи в APPROVED/REJECTED воркфлоу одобрения.
type LedgerRepository interface {
	// ApplyTransfer применяет перевод как одну транзакцию хранилища и
	// возвращает добавленные записи (DEBIT, CREDIT)
	ApplyTransfer(app *TransferApplication) (*models.LedgerEntry, *models.LedgerEntry, error)

	// GetEntryByID получает запись журнала по id
	GetEntryByID(id int64) (*models.LedgerEntry, error)

	// UpdateEntryStatus переводит PENDING запись в APPROVED или REJECTED
	UpdateEntryStatus(id int64, status string) (*models.LedgerEntry, error)

	// GetEntriesByAccount получает записи по счету, новые первыми
	GetEntriesByAccount(accountID int64, limit, offset int) ([]*models.LedgerEntry, error)

	// GetEntriesByUser получает записи по владельцу счета, новые первыми
	GetEntriesByUser(userID int64, limit, offset int) ([]*models.LedgerEntry, error)

	// GetRecentEntries получает последние записи журнала
	GetRecentEntries(limit int) ([]*models.LedgerEntry, error)

	// CountEntriesByStatus считает записи в заданном статусе
	CountEntriesByStatus(status string) (int, error)
}

// ScheduledTransferRepository определяет интерфейс для постоянных поручений
type ScheduledTransferRepository interface {
	// SaveScheduledTransfer сохраняет поручение и возвращает его id
	SaveScheduledTransfer(st *models.ScheduledTransfer) (int64, error)

	// GetDueTransfers получает поручения с датой исполнения раньше now
	GetDueTransfers(now time.Time) ([]*models.ScheduledTransfer, error)

	// UpdateNextExecution сдвигает дату следующего исполнения поручения
	UpdateNextExecution(id int64, next time.Time) error

	// DeleteScheduledTransfer удаляет поручение (отмена или истечение срока)
	DeleteScheduledTransfer(id int64) error

	// GetScheduledTransfersByAccount получает поручения, затрагивающие счет
	GetScheduledTransfersByAccount(accountID int64, limit, offset int) ([]*models.ScheduledTransfer, error)
}
