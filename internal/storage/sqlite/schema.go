package sqlite

// initSchema инициализирует схему БД.
// Денежные суммы хранятся как TEXT и разбираются через shopspring/decimal:
// REAL не используется, чтобы исключить двоичную погрешность.
func (s *SQLiteStorage) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS accounts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		owner_user_id INTEGER NOT NULL,
		account_number TEXT UNIQUE NOT NULL,
		balance TEXT NOT NULL DEFAULT '0',
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS ledger_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		account_id INTEGER NOT NULL REFERENCES accounts(id),
		owner_user_id INTEGER NOT NULL,
		amount TEXT NOT NULL,
		type TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		status TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS scheduled_transfers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		from_account_id INTEGER NOT NULL,
		to_account_id INTEGER NOT NULL,
		amount TEXT NOT NULL,
		frequency TEXT NOT NULL,
		next_execution_date DATETIME NOT NULL,
		end_date DATETIME,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_accounts_owner ON accounts(owner_user_id);
	CREATE INDEX IF NOT EXISTS idx_accounts_number ON accounts(account_number);
	CREATE INDEX IF NOT EXISTS idx_entries_account ON ledger_entries(account_id);
	CREATE INDEX IF NOT EXISTS idx_entries_owner ON ledger_entries(owner_user_id);
	CREATE INDEX IF NOT EXISTS idx_entries_status ON ledger_entries(status);
	CREATE INDEX IF NOT EXISTS idx_entries_timestamp ON ledger_entries(timestamp);
	CREATE INDEX IF NOT EXISTS idx_scheduled_next_execution ON scheduled_transfers(next_execution_date);
	`

	_, err := s.DB.Exec(query)
	return err
}
