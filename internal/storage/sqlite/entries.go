package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"bank-ledger-system/internal/ledger"
	"bank-ledger-system/internal/models"
)

const entryColumns = `id, account_id, owner_user_id, amount, type, timestamp, status`

// GetEntryByID получает запись журнала по id
func (s *SQLiteStorage) GetEntryByID(id int64) (*models.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE id = ?`

	entry, err := scanEntryRow(s.DB.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateEntryStatus переводит PENDING запись в APPROVED или REJECTED.
// Единственная разрешенная мутация журнала: история исправляется
// добавлением встречных записей, а не редактированием.
func (s *SQLiteStorage) UpdateEntryStatus(id int64, status string) (*models.LedgerEntry, error) {
	if status != models.EntryStatusApproved && status != models.EntryStatusRejected {
		return nil, ledger.ErrInvalidStatus
	}

	res, err := s.DB.Exec(
		`UPDATE ledger_entries SET status = ? WHERE id = ? AND status = ?`,
		status, id, models.EntryStatusPending,
	)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Либо записи нет, либо она не PENDING
		existing, err := s.GetEntryByID(id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, ledger.ErrEntryNotFound
		}
		return nil, ledger.ErrInvalidStatus
	}

	return s.GetEntryByID(id)
}

// GetEntriesByAccount получает записи по счету, новые первыми
func (s *SQLiteStorage) GetEntriesByAccount(accountID int64, limit, offset int) ([]*models.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE account_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`
	return s.queryEntries(query, accountID, limit, offset)
}

// GetEntriesByUser получает записи по владельцу счета, новые первыми
func (s *SQLiteStorage) GetEntriesByUser(userID int64, limit, offset int) ([]*models.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE owner_user_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?
	`
	return s.queryEntries(query, userID, limit, offset)
}

// GetRecentEntries получает последние записи журнала
func (s *SQLiteStorage) GetRecentEntries(limit int) ([]*models.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`
	return s.queryEntries(query, limit)
}

// CountEntriesByStatus считает записи в заданном статусе
func (s *SQLiteStorage) CountEntriesByStatus(status string) (int, error) {
	var count int
	err := s.DB.QueryRow(`SELECT COUNT(*) FROM ledger_entries WHERE status = ?`, status).Scan(&count)
	return count, err
}

func (s *SQLiteStorage) queryEntries(query string, args ...interface{}) ([]*models.LedgerEntry, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*models.LedgerEntry, 0)
	for rows.Next() {
		entry, err := scanEntryRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func scanEntryRow(row rowScanner) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	var amount string

	err := row.Scan(
		&entry.ID, &entry.AccountID, &entry.OwnerUserID, &amount,
		&entry.Type, &entry.Timestamp, &entry.Status,
	)
	if err != nil {
		return nil, err
	}

	entry.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("corrupted amount for entry %d: %w", entry.ID, err)
	}
	return &entry, nil
}
