package sqlite

import (
	"database/sql"
	"time"

	"bank-ledger-system/internal/ledger"
	"bank-ledger-system/internal/models"
	"bank-ledger-system/internal/storage"
)

// ApplyTransfer применяет перевод как одну транзакцию SQLite: блокировка
// обеих строк счетов, повторная проверка платежеспособности источника,
// мутация двух балансов и добавление пары записей журнала (DEBIT, затем
// CREDIT) с общим timestamp и статусом. Любая ошибка откатывает всё:
// частичное применение невозможно.
//
// Счета читаются в порядке возрастания id, чтобы встречные переводы
// не могли взаимно заблокироваться.
func (s *SQLiteStorage) ApplyTransfer(app *storage.TransferApplication) (*models.LedgerEntry, *models.LedgerEntry, error) {
	var debit, credit *models.LedgerEntry

	err := retryOperation(func() error {
		tx, err := s.DB.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		ids := []int64{app.FromAccountID, app.ToAccountID}
		if ids[1] < ids[0] {
			ids[0], ids[1] = ids[1], ids[0]
		}
		if app.FromAccountID == app.ToAccountID {
			ids = ids[:1]
		}

		accounts := map[int64]*models.Account{}
		for _, id := range ids {
			acc, err := scanAccountIn(tx, id)
			if err != nil {
				return err
			}
			if acc == nil {
				return ledger.ErrAccountNotFound
			}
			accounts[id] = acc
		}

		source := accounts[app.FromAccountID]
		dest := accounts[app.ToAccountID]

		totalDebit := app.Amount.Add(app.Fee)
		if source.Balance.LessThan(totalDebit) {
			return ledger.ErrInsufficientFunds
		}

		updateQuery := `UPDATE accounts SET balance = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

		if source.ID == dest.ID {
			// Перевод на тот же счет: чистый эффект — списание комиссии
			newBalance := source.Balance.Sub(totalDebit).Add(app.Amount)
			if _, err := tx.Exec(updateQuery, newBalance.String(), source.ID); err != nil {
				return err
			}
		} else {
			newSourceBalance := source.Balance.Sub(totalDebit)
			newDestBalance := dest.Balance.Add(app.Amount)

			if _, err := tx.Exec(updateQuery, newSourceBalance.String(), source.ID); err != nil {
				return err
			}
			if _, err := tx.Exec(updateQuery, newDestBalance.String(), dest.ID); err != nil {
				return err
			}
		}

		d, err := insertEntryIn(tx, source.ID, source.OwnerUserID, app, models.EntryTypeDebit)
		if err != nil {
			return err
		}
		c, err := insertEntryIn(tx, dest.ID, dest.OwnerUserID, app, models.EntryTypeCredit)
		if err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return err
		}

		debit, credit = d, c
		return nil
	}, 3, 50*time.Millisecond)

	if err != nil {
		return nil, nil, err
	}
	return debit, credit, nil
}

// insertEntryIn добавляет одну запись журнала внутри открытой транзакции
func insertEntryIn(tx *sql.Tx, accountID, ownerUserID int64, app *storage.TransferApplication, entryType string) (*models.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (account_id, owner_user_id, amount, type, timestamp, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	res, err := tx.Exec(query, accountID, ownerUserID, app.Amount.String(), entryType, app.Timestamp, app.Status)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.LedgerEntry{
		ID:          id,
		AccountID:   accountID,
		OwnerUserID: ownerUserID,
		Amount:      app.Amount,
		Type:        entryType,
		Timestamp:   app.Timestamp,
		Status:      app.Status,
	}, nil
}
