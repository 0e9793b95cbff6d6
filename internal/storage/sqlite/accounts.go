package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"bank-ledger-system/internal/ledger"
	"bank-ledger-system/internal/models"
)

// CreateAccount сохраняет новый счет и возвращает его id
func (s *SQLiteStorage) CreateAccount(acc *models.Account) (int64, error) {
	query := `
		INSERT INTO accounts (owner_user_id, account_number, balance, status)
		VALUES (?, ?, ?, ?)
	`

	res, err := s.DB.Exec(query, acc.OwnerUserID, acc.AccountNumber, acc.Balance.String(), acc.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetAccountByID получает счет по id
func (s *SQLiteStorage) GetAccountByID(id int64) (*models.Account, error) {
	query := `
		SELECT id, owner_user_id, account_number, balance, status, created_at, updated_at
		FROM accounts
		WHERE id = ?
	`
	return s.scanAccount(s.DB.QueryRow(query, id))
}

// GetAccountByNumber получает счет по номеру счета
func (s *SQLiteStorage) GetAccountByNumber(number string) (*models.Account, error) {
	query := `
		SELECT id, owner_user_id, account_number, balance, status, created_at, updated_at
		FROM accounts
		WHERE account_number = ?
	`
	return s.scanAccount(s.DB.QueryRow(query, number))
}

// AccountNumberExists проверяет занятость номера счета
func (s *SQLiteStorage) AccountNumberExists(number string) (bool, error) {
	var count int
	err := s.DB.QueryRow(`SELECT COUNT(*) FROM accounts WHERE account_number = ?`, number).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAccountsByUser получает счета пользователя (постранично)
func (s *SQLiteStorage) GetAccountsByUser(userID int64, limit, offset int) ([]*models.Account, error) {
	query := `
		SELECT id, owner_user_id, account_number, balance, status, created_at, updated_at
		FROM accounts
		WHERE owner_user_id = ?
		ORDER BY id
		LIMIT ? OFFSET ?
	`

	rows, err := s.DB.Query(query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*models.Account, 0)
	for rows.Next() {
		acc, err := scanAccountRow(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// UpdateAccountStatus административно меняет статус счета
func (s *SQLiteStorage) UpdateAccountStatus(id int64, status string) error {
	res, err := s.DB.Exec(
		`UPDATE accounts SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, id,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ledger.ErrAccountNotFound
	}
	return nil
}

// Deposit атомарно увеличивает баланс счета
func (s *SQLiteStorage) Deposit(accountID int64, amount decimal.Decimal) (*models.Account, error) {
	return s.adjustBalance(accountID, amount, false)
}

// Withdraw атомарно уменьшает баланс счета с проверкой платежеспособности
func (s *SQLiteStorage) Withdraw(accountID int64, amount decimal.Decimal) (*models.Account, error) {
	return s.adjustBalance(accountID, amount.Neg(), true)
}

// adjustBalance изменяет баланс одного счета внутри одной транзакции БД:
// чтение текущего баланса, проверка и запись не разделяются другими писателями
func (s *SQLiteStorage) adjustBalance(accountID int64, delta decimal.Decimal, checkSolvency bool) (*models.Account, error) {
	var result *models.Account

	err := retryOperation(func() error {
		tx, err := s.DB.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		acc, err := scanAccountIn(tx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return ledger.ErrAccountNotFound
		}

		newBalance := acc.Balance.Add(delta)
		if checkSolvency && newBalance.IsNegative() {
			return ledger.ErrInsufficientFunds
		}

		if _, err := tx.Exec(
			`UPDATE accounts SET balance = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			newBalance.String(), accountID,
		); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return err
		}

		acc.Balance = newBalance
		result = acc
		return nil
	}, 3, 50*time.Millisecond)

	if err != nil {
		return nil, err
	}
	return result, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *SQLiteStorage) scanAccount(row *sql.Row) (*models.Account, error) {
	acc, err := scanAccountRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func scanAccountRow(row rowScanner) (*models.Account, error) {
	var acc models.Account
	var balance string

	err := row.Scan(
		&acc.ID, &acc.OwnerUserID, &acc.AccountNumber, &balance, &acc.Status,
		&acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	acc.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("corrupted balance for account %d: %w", acc.ID, err)
	}
	return &acc, nil
}

// scanAccountIn читает счет внутри открытой транзакции
func scanAccountIn(tx *sql.Tx, accountID int64) (*models.Account, error) {
	query := `
		SELECT id, owner_user_id, account_number, balance, status, created_at, updated_at
		FROM accounts
		WHERE id = ?
	`
	acc, err := scanAccountRow(tx.QueryRow(query, accountID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return acc, nil
}
