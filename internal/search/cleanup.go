package search

import (
	"context"
	"fmt"
)

// ClearIndex очищает все данные индекса записей журнала.
// Индекс производный, поэтому полная очистка безопасна:
// его можно наполнить заново из потока событий.
func (c *Client) ClearIndex() error {
	ctx := context.Background()

	patterns := []string{
		"ledger:entry:*",
		"ledger:account:*",
		"ledger:stats:*",
	}

	for _, pattern := range patterns {
		iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			c.rdb.Del(ctx, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to clear pattern %s: %w", pattern, err)
		}
	}

	return nil
}
