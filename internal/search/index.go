package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	redisv9 "github.com/redis/go-redis/v9"

	"bank-ledger-system/internal/models"
)

// SaveEntry индексирует одну запись журнала
func (c *Client) SaveEntry(entry *models.LedgerEntry) error {
	ctx := context.Background()
	key := fmt.Sprintf("ledger:entry:%d", entry.ID)

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	pipe := c.rdb.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, fmt.Sprintf("ledger:account:%d:entries", entry.AccountID), entry.ID)
	if entry.Status == models.EntryStatusPending {
		pipe.Incr(ctx, "ledger:stats:pending")
	}
	_, err = pipe.Exec(ctx)
	return err
}

// GetEntry получает проиндексированную запись; nil, nil если её нет в индексе
func (c *Client) GetEntry(entryID int64) (*models.LedgerEntry, error) {
	ctx := context.Background()
	key := fmt.Sprintf("ledger:entry:%d", entryID)

	data, err := c.rdb.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	var entry models.LedgerEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entry: %w", err)
	}
	return &entry, nil
}

// UpdateEntryStatus переписывает статус записи в индексе
func (c *Client) UpdateEntryStatus(entryID int64, status string) error {
	ctx := context.Background()

	entry, err := c.GetEntry(entryID)
	if err != nil {
		return err
	}
	if entry == nil {
		// Записи еще нет в индексе: событие статуса пришло раньше записи,
		// следующая синхронизация записи принесет актуальный статус
		return nil
	}

	wasPending := entry.Status == models.EntryStatusPending
	entry.Status = status

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	pipe := c.rdb.Pipeline()
	pipe.Set(ctx, fmt.Sprintf("ledger:entry:%d", entryID), data, 0)
	if wasPending && status != models.EntryStatusPending {
		pipe.Decr(ctx, "ledger:stats:pending")
	}
	_, err = pipe.Exec(ctx)
	return err
}

// GetPendingCount возвращает число записей, ожидающих одобрения
func (c *Client) GetPendingCount() (int64, error) {
	ctx := context.Background()
	count, err := c.rdb.Get(ctx, "ledger:stats:pending").Int64()
	if err == redisv9.Nil {
		return 0, nil
	}
	return count, err
}

// Search ищет записи по критериям. При заданном AccountID перебирается
// множество записей счета, иначе — все проиндексированные записи (SCAN).
func (c *Client) Search(criteria *models.SearchCriteria) ([]*models.LedgerEntry, error) {
	ctx := context.Background()

	var results []*models.LedgerEntry

	if criteria.AccountID != 0 {
		ids, err := c.rdb.SMembers(ctx, fmt.Sprintf("ledger:account:%d:entries", criteria.AccountID)).Result()
		if err != nil {
			return nil, err
		}
		for _, idStr := range ids {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				continue
			}
			entry, err := c.GetEntry(id)
			if err != nil {
				return nil, err
			}
			if entry != nil && matches(entry, criteria) {
				results = append(results, entry)
			}
		}
		return results, nil
	}

	iter := c.rdb.Scan(ctx, 0, "ledger:entry:*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := c.rdb.Get(ctx, iter.Val()).Result()
		if err == redisv9.Nil {
			continue
		}
		if err != nil {
			return nil, err
		}

		var entry models.LedgerEntry
		if err := json.Unmarshal([]byte(data), &entry); err != nil {
			continue
		}
		if matches(&entry, criteria) {
			results = append(results, &entry)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan index: %w", err)
	}

	return results, nil
}

func matches(entry *models.LedgerEntry, criteria *models.SearchCriteria) bool {
	if criteria.Amount != nil && !entry.Amount.Equal(*criteria.Amount) {
		return false
	}
	if criteria.Type != "" && entry.Type != criteria.Type {
		return false
	}
	if criteria.Status != "" && entry.Status != criteria.Status {
		return false
	}
	if criteria.StartDate != nil && entry.Timestamp.Before(*criteria.StartDate) {
		return false
	}
	if criteria.EndDate != nil && entry.Timestamp.After(*criteria.EndDate) {
		return false
	}
	return true
}
