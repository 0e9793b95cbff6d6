package ledger

import (
	"time"

	"bank-ledger-system/internal/models"
)

// IsValidFrequency проверяет, что частота регулярного перевода распознана
func IsValidFrequency(frequency string) bool {
	switch frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly:
		return true
	}
	return false
}

// NextExecution сдвигает дату исполнения на одну единицу частоты.
// MONTHLY и YEARLY используют календарную арифметику (AddDate),
// а не фиксированное число часов.
func NextExecution(from time.Time, frequency string) (time.Time, error) {
	switch frequency {
	case models.FrequencyDaily:
		return from.AddDate(0, 0, 1), nil
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7), nil
	case models.FrequencyMonthly:
		return from.AddDate(0, 1, 0), nil
	case models.FrequencyYearly:
		return from.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, ErrInvalidFrequency
	}
}
