package sqlite

import (
	"testing"
	"time"

	"bank-ledger-system/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveTestScheduled(t *testing.T, s *SQLiteStorage, from, to int64, next time.Time) int64 {
	t.Helper()

	id, err := s.SaveScheduledTransfer(&models.ScheduledTransfer{
		FromAccountID:     from,
		ToAccountID:       to,
		Amount:            decimal.NewFromInt(300),
		Frequency:         models.FrequencyMonthly,
		NextExecutionDate: next,
	})
	require.NoError(t, err)
	return id
}

func TestSaveAndGetDueTransfers(t *testing.T) {
	s := setupTestStorage(t)

	now := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	dueID := saveTestScheduled(t, s, 1, 2, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	saveTestScheduled(t, s, 1, 2, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))

	due, err := s.GetDueTransfers(now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, dueID, due[0].ID)
	assert.True(t, due[0].Amount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, models.FrequencyMonthly, due[0].Frequency)
}

func TestGetDueTransfers_StrictlyBefore(t *testing.T) {
	s := setupTestStorage(t)

	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	saveTestScheduled(t, s, 1, 2, now)

	// Дата, равная now, еще не due
	due, err := s.GetDueTransfers(now)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestUpdateNextExecution(t *testing.T) {
	s := setupTestStorage(t)

	id := saveTestScheduled(t, s, 1, 2, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	next := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	err := s.UpdateNextExecution(id, next)
	require.NoError(t, err)

	due, err := s.GetDueTransfers(time.Date(2024, 2, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.True(t, due[0].NextExecutionDate.Equal(next))

	// После сдвига поручение больше не due на прежнюю дату
	due, err = s.GetDueTransfers(time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestDeleteScheduledTransfer(t *testing.T) {
	s := setupTestStorage(t)

	id := saveTestScheduled(t, s, 1, 2, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	err := s.DeleteScheduledTransfer(id)
	require.NoError(t, err)

	due, err := s.GetDueTransfers(time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestGetScheduledTransfersByAccount(t *testing.T) {
	s := setupTestStorage(t)

	next := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	saveTestScheduled(t, s, 1, 2, next)
	saveTestScheduled(t, s, 3, 1, next)
	saveTestScheduled(t, s, 3, 4, next)

	// Счет находится и как источник, и как назначение
	transfers, err := s.GetScheduledTransfersByAccount(1, 10, 0)
	require.NoError(t, err)
	assert.Len(t, transfers, 2)

	transfers, err = s.GetScheduledTransfersByAccount(4, 10, 0)
	require.NoError(t, err)
	assert.Len(t, transfers, 1)

	transfers, err = s.GetScheduledTransfersByAccount(99, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestScheduledTransfer_EndDateRoundTrip(t *testing.T) {
	s := setupTestStorage(t)

	endDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	id, err := s.SaveScheduledTransfer(&models.ScheduledTransfer{
		FromAccountID:     1,
		ToAccountID:       2,
		Amount:            decimal.NewFromInt(50),
		Frequency:         models.FrequencyWeekly,
		NextExecutionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:           &endDate,
	})
	require.NoError(t, err)

	due, err := s.GetDueTransfers(time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, id, due[0].ID)
	require.NotNil(t, due[0].EndDate)
	assert.True(t, due[0].EndDate.Equal(endDate))
}
