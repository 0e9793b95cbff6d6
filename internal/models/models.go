package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы счета
const (
	AccountStatusActive   = "ACTIVE"
	AccountStatusInactive = "INACTIVE"
	AccountStatusFrozen   = "FROZEN"
)

// Account представляет банковский счет
type Account struct {
	ID            int64           `json:"id" db:"id"`
	OwnerUserID   int64           `json:"owner_user_id" db:"owner_user_id"`
	AccountNumber string          `json:"account_number" db:"account_number"`
	Balance       decimal.Decimal `json:"balance" db:"balance"`
	Status        string          `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// Направления движения средств в записи журнала
const (
	EntryTypeDebit  = "DEBIT"
	EntryTypeCredit = "CREDIT"
)

// Статусы расчета (settlement) записи журнала
const (
	EntryStatusApproved = "APPROVED"
	EntryStatusPending  = "PENDING"
	EntryStatusRejected = "REJECTED"
)

// LedgerEntry представляет одну неизменяемую запись журнала транзакций:
// движение средств в одном направлении по одному счету.
// Успешный перевод всегда порождает ровно две записи (DEBIT + CREDIT)
// с одинаковыми timestamp и status.
type LedgerEntry struct {
	ID          int64           `json:"id" db:"id"`
	AccountID   int64           `json:"account_id" db:"account_id"`
	OwnerUserID int64           `json:"owner_user_id" db:"owner_user_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Type        string          `json:"type" db:"type"`
	Timestamp   time.Time       `json:"timestamp" db:"timestamp"`
	Status      string          `json:"status" db:"status"`
}

// Частоты регулярных переводов
const (
	FrequencyDaily   = "DAILY"
	FrequencyWeekly  = "WEEKLY"
	FrequencyMonthly = "MONTHLY"
	FrequencyYearly  = "YEARLY"
)

// ScheduledTransfer представляет постоянное поручение: регулярный перевод,
// который планировщик исполняет по расписанию. Изменяется только планировщиком.
type ScheduledTransfer struct {
	ID                int64           `json:"id" db:"id"`
	FromAccountID     int64           `json:"from_account_id" db:"from_account_id"`
	ToAccountID       int64           `json:"to_account_id" db:"to_account_id"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	Frequency         string          `json:"frequency" db:"frequency"`
	NextExecutionDate time.Time       `json:"next_execution_date" db:"next_execution_date"`
	EndDate           *time.Time      `json:"end_date,omitempty" db:"end_date"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
}

// TransferRequest представляет запрос на перевод средств
type TransferRequest struct {
	FromAccountID   int64           `json:"from_account_id" binding:"required"`
	ToAccountID     int64           `json:"to_account_id"`
	ToAccountNumber string          `json:"to_account_number"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransferClass   string          `json:"transfer_class" binding:"required"`
}

// TransferResult представляет результат успешного перевода
type TransferResult struct {
	DebitEntry   *LedgerEntry    `json:"debit_entry"`
	CreditEntry  *LedgerEntry    `json:"credit_entry"`
	Fee          decimal.Decimal `json:"fee"`
	TotalDebited decimal.Decimal `json:"total_debited"`
	Status       string          `json:"status"`
}

// ScheduleRequest представляет запрос на создание постоянного поручения
type ScheduleRequest struct {
	FromAccountID   int64           `json:"from_account_id" binding:"required"`
	ToAccountID     int64           `json:"to_account_id"`
	ToAccountNumber string          `json:"to_account_number"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Frequency       string          `json:"frequency" binding:"required"`
	EndDate         *time.Time      `json:"end_date,omitempty"`
}

// Направление в истории операций пользователя
const (
	HistoryDirectionSent     = "SENT"
	HistoryDirectionReceived = "RECEIVED"
)

// HistoryEntry представляет запись журнала в истории пользователя:
// та же запись, но с направлением относительно пользователя.
type HistoryEntry struct {
	ID        int64           `json:"id"`
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"direction"`
	Timestamp time.Time       `json:"timestamp"`
	Status    string          `json:"status"`
}

// SearchCriteria представляет критерии поиска по индексу записей журнала
type SearchCriteria struct {
	Amount    *decimal.Decimal
	Type      string
	Status    string
	AccountID int64
	StartDate *time.Time
	EndDate   *time.Time
}
