package search

import (
	"bank-ledger-system/internal/models"
)

// IndexInterface определяет интерфейс поискового индекса записей журнала.
// Это позволяет легко создавать моки для тестирования.
// Реализуется типом Client.
type IndexInterface interface {
	// SaveEntry индексирует одну запись журнала
	SaveEntry(entry *models.LedgerEntry) error

	// GetEntry получает проиндексированную запись
	GetEntry(entryID int64) (*models.LedgerEntry, error)

	// UpdateEntryStatus переписывает статус записи в индексе
	UpdateEntryStatus(entryID int64, status string) error

	// GetPendingCount возвращает число записей, ожидающих одобрения
	GetPendingCount() (int64, error)

	// Search ищет записи по критериям
	Search(criteria *models.SearchCriteria) ([]*models.LedgerEntry, error)
}

var _ IndexInterface = (*Client)(nil)
