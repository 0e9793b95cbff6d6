package sqlite

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"bank-ledger-system/internal/models"
)

const scheduledColumns = `id, from_account_id, to_account_id, amount, frequency, next_execution_date, end_date, created_at`

// SaveScheduledTransfer сохраняет постоянное поручение и возвращает его id
func (s *SQLiteStorage) SaveScheduledTransfer(st *models.ScheduledTransfer) (int64, error) {
	query := `
		INSERT INTO scheduled_transfers (from_account_id, to_account_id, amount, frequency, next_execution_date, end_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := s.DB.Exec(
		query,
		st.FromAccountID, st.ToAccountID, st.Amount.String(),
		st.Frequency, st.NextExecutionDate, st.EndDate,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetDueTransfers получает поручения с датой исполнения раньше now
func (s *SQLiteStorage) GetDueTransfers(now time.Time) ([]*models.ScheduledTransfer, error) {
	query := `
		SELECT ` + scheduledColumns + `
		FROM scheduled_transfers
		WHERE next_execution_date < ?
		ORDER BY next_execution_date
	`
	return s.queryScheduled(query, now)
}

// UpdateNextExecution сдвигает дату следующего исполнения поручения
func (s *SQLiteStorage) UpdateNextExecution(id int64, next time.Time) error {
	_, err := s.DB.Exec(
		`UPDATE scheduled_transfers SET next_execution_date = ? WHERE id = ?`,
		next, id,
	)
	return err
}

// DeleteScheduledTransfer удаляет поручение (отмена или истечение срока)
func (s *SQLiteStorage) DeleteScheduledTransfer(id int64) error {
	_, err := s.DB.Exec(`DELETE FROM scheduled_transfers WHERE id = ?`, id)
	return err
}

// GetScheduledTransfersByAccount получает поручения, затрагивающие счет
// как источник или назначение (постранично)
func (s *SQLiteStorage) GetScheduledTransfersByAccount(accountID int64, limit, offset int) ([]*models.ScheduledTransfer, error) {
	query := `
		SELECT ` + scheduledColumns + `
		FROM scheduled_transfers
		WHERE from_account_id = ? OR to_account_id = ?
		ORDER BY id
		LIMIT ? OFFSET ?
	`
	return s.queryScheduled(query, accountID, accountID, limit, offset)
}

func (s *SQLiteStorage) queryScheduled(query string, args ...interface{}) ([]*models.ScheduledTransfer, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transfers := make([]*models.ScheduledTransfer, 0)
	for rows.Next() {
		var st models.ScheduledTransfer
		var amount string

		err := rows.Scan(
			&st.ID, &st.FromAccountID, &st.ToAccountID, &amount,
			&st.Frequency, &st.NextExecutionDate, &st.EndDate, &st.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		st.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupted amount for scheduled transfer %d: %w", st.ID, err)
		}
		transfers = append(transfers, &st)
	}
	return transfers, rows.Err()
}
