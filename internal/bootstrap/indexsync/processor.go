package indexsync

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"bank-ledger-system/internal/logger"
	"bank-ledger-system/internal/models"
	"bank-ledger-system/internal/search"
)

// processLedgerEvent применяет событие журнала к поисковому индексу.
// Семантика at-least-once: повторная доставка события перезаписывает
// ту же запись и не искажает индекс.
func processLedgerEvent(event *models.KafkaLedgerEvent, index *search.Client) error {
	logger.Log.Debug("processing ledger event",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
		zap.Int64("entry_id", event.Data.EntryID),
	)

	switch event.EventType {
	case models.EventTypeEntryRecorded:
		entry := &models.LedgerEntry{
			ID:          event.Data.EntryID,
			AccountID:   event.Data.AccountID,
			OwnerUserID: event.Data.OwnerUserID,
			Amount:      event.Data.Amount,
			Type:        event.Data.Type,
			Timestamp:   event.Data.Timestamp,
			Status:      event.Data.Status,
		}
		if err := index.SaveEntry(entry); err != nil {
			logger.Log.Error("failed to index ledger entry",
				zap.Int64("entry_id", entry.ID),
				zap.Error(err),
			)
			logger.LogEvent(logger.EventIndexSyncFailed, "index-sync-service", "redis", map[string]interface{}{
				"entry_id": entry.ID,
				"error":    err.Error(),
			})
			return err
		}

		logger.LogEvent(logger.EventIndexSynced, "index-sync-service", "redis", map[string]interface{}{
			"entry_id":   entry.ID,
			"account_id": entry.AccountID,
			"status":     entry.Status,
		})

	case models.EventTypeStatusChanged:
		if err := index.UpdateEntryStatus(event.Data.EntryID, event.Data.Status); err != nil {
			logger.Log.Error("failed to update entry status in index",
				zap.Int64("entry_id", event.Data.EntryID),
				zap.Error(err),
			)
			logger.LogEvent(logger.EventIndexSyncFailed, "index-sync-service", "redis", map[string]interface{}{
				"entry_id": event.Data.EntryID,
				"error":    err.Error(),
			})
			return err
		}

		logger.LogEvent(logger.EventStatusChanged, "index-sync-service", "redis", map[string]interface{}{
			"entry_id": event.Data.EntryID,
			"status":   event.Data.Status,
		})

	default:
		// Незнакомый тип события не повод останавливать консьюмер
		logger.Log.Warn("unknown ledger event type",
			zap.String("event_type", event.EventType),
			zap.String("event_id", event.EventID),
		)
		return nil
	}

	logger.Log.Info(fmt.Sprintf("ledger event %s applied to index", event.EventID),
		zap.Int64("entry_id", event.Data.EntryID),
		zap.Duration("lag", time.Since(event.Timestamp)),
	)

	return nil
}
