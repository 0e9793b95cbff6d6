package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventLogger(t *testing.T) {
	logger := NewEventLogger(100)
	require.NotNil(t, logger)
	assert.Equal(t, 100, logger.maxSize)
	assert.NotNil(t, logger.events)
	assert.Equal(t, 0, len(logger.events))
}

func TestEventLogger_LogEvent(t *testing.T) {
	logger := NewEventLogger(100)

	data := map[string]interface{}{
		"debit_entry_id":  int64(1),
		"credit_entry_id": int64(2),
		"amount":          "100.00",
	}

	logger.LogEvent(EventEntriesRecorded, "ledger-service", "sqlite", data)

	assert.Len(t, logger.events, 1)
	event := logger.events[0]
	assert.Equal(t, EventEntriesRecorded, event.Type)
	assert.Equal(t, "ledger-service", event.Service)
	assert.Equal(t, "sqlite", event.Component)
	assert.Equal(t, data, event.Data)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.Timestamp.IsZero())
}

func TestEventLogger_RingLimit(t *testing.T) {
	logger := NewEventLogger(3)

	for i := 0; i < 5; i++ {
		logger.LogEvent(EventTransferCompleted, "ledger-service", "engine", map[string]interface{}{"n": i})
	}

	events := logger.GetEvents(10)
	require.Len(t, events, 3)
	// Остаются только последние события
	assert.Equal(t, 2, events[0].Data["n"])
	assert.Equal(t, 4, events[2].Data["n"])
}

func TestEventLogger_GetEvents_Limit(t *testing.T) {
	logger := NewEventLogger(100)

	for i := 0; i < 10; i++ {
		logger.LogEvent(EventSchedulerRun, "ledger-service", "scheduler", nil)
	}

	assert.Len(t, logger.GetEvents(4), 4)
	assert.Len(t, logger.GetEvents(0), 10)
	assert.Len(t, logger.GetEvents(100), 10)
}

func TestEventLogger_GetStats(t *testing.T) {
	logger := NewEventLogger(100)

	logger.LogEvent(EventTransferCompleted, "ledger-service", "engine", nil)
	logger.LogEvent(EventTransferCompleted, "ledger-service", "engine", nil)
	logger.LogEvent(EventIndexSynced, "index-sync-service", "redis", nil)

	stats := logger.GetStats()
	assert.Equal(t, 3, stats["total_events"])

	typeStats, ok := stats["event_types"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 2, typeStats[string(EventTransferCompleted)])
	assert.Equal(t, 1, typeStats[string(EventIndexSynced)])
}
