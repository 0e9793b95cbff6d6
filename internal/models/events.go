package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы событий журнала в Kafka
const (
	EventTypeEntryRecorded = "ledger_entry_recorded"
	EventTypeStatusChanged = "ledger_entry_status_changed"
)

// KafkaLedgerEvent представляет событие журнала транзакций в Kafka.
// Поток событий — производное представление журнала: durable-запись в SQLite
// первична, индекс в Redis наполняется из этого потока best-effort.
type KafkaLedgerEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      KafkaLedgerData `json:"data"`
}

// KafkaLedgerData представляет данные записи журнала в событии
type KafkaLedgerData struct {
	EntryID     int64           `json:"entry_id"`
	AccountID   int64           `json:"account_id"`
	OwnerUserID int64           `json:"owner_user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Timestamp   time.Time       `json:"timestamp"`
	Status      string          `json:"status"`
}
