package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-ledger-system/internal/models"
)

func TestIsValidFrequency(t *testing.T) {
	assert.True(t, IsValidFrequency(models.FrequencyDaily))
	assert.True(t, IsValidFrequency(models.FrequencyWeekly))
	assert.True(t, IsValidFrequency(models.FrequencyMonthly))
	assert.True(t, IsValidFrequency(models.FrequencyYearly))

	assert.False(t, IsValidFrequency("HOURLY"))
	assert.False(t, IsValidFrequency("daily"))
	assert.False(t, IsValidFrequency(""))
}

func TestNextExecution(t *testing.T) {
	from := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	next, err := NextExecution(from, models.FrequencyDaily)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC), next)

	next, err = NextExecution(from, models.FrequencyWeekly)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 22, 10, 0, 0, 0, time.UTC), next)

	next, err = NextExecution(from, models.FrequencyMonthly)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC), next)

	next, err = NextExecution(from, models.FrequencyYearly)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC), next)
}

func TestNextExecution_CalendarMonth(t *testing.T) {
	// Календарная арифметика: 31 января + месяц нормализуется Go в начало марта
	from := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	next, err := NextExecution(from, models.FrequencyMonthly)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), next)
}

func TestNextExecution_InvalidFrequency(t *testing.T) {
	_, err := NextExecution(time.Now(), "FORTNIGHTLY")
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}
