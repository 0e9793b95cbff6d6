package ledger

import "errors"

// Виды бизнес-ошибок движка переводов. Каждая ошибка валидации или
// бизнес-правила доходит до вызывающего кода как различимый вид (errors.Is),
// никогда не сворачивается в общий failure. Любая из них означает, что
// балансы и журнал не изменились.
var (
	ErrInvalidAmount        = errors.New("transfer amount must be positive")
	ErrInvalidTransferClass = errors.New("invalid transfer class")
	ErrInvalidFrequency     = errors.New("invalid frequency")
	ErrAccountNotFound      = errors.New("account not found")
	ErrUnauthorized         = errors.New("account is not owned by the acting user")
	ErrInsufficientFunds    = errors.New("insufficient funds, including transfer fee")
	ErrEntryNotFound        = errors.New("ledger entry not found")
	ErrInvalidStatus        = errors.New("invalid settlement status transition")
)
