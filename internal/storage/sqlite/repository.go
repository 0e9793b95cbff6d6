package sqlite

import (
	"bank-ledger-system/internal/storage"
)

// SQLiteStorage реализует все три репозитория над одной БД,
// чтобы перевод мог атомарно затронуть счета и журнал
var (
	_ storage.AccountRepository           = (*SQLiteStorage)(nil)
	_ storage.LedgerRepository            = (*SQLiteStorage)(nil)
	_ storage.ScheduledTransferRepository = (*SQLiteStorage)(nil)
)

// NewAccountRepository возвращает репозиторий счетов поверх SQLite
func NewAccountRepository(s *SQLiteStorage) storage.AccountRepository { return s }

// NewLedgerRepository возвращает репозиторий журнала поверх SQLite
func NewLedgerRepository(s *SQLiteStorage) storage.LedgerRepository { return s }

// NewScheduledTransferRepository возвращает репозиторий поручений поверх SQLite
func NewScheduledTransferRepository(s *SQLiteStorage) storage.ScheduledTransferRepository { return s }
