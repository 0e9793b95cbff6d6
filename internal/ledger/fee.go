package ledger

import (
	"github.com/shopspring/decimal"

	"bank-ledger-system/internal/models"
)

// Классы переводов
const (
	ClassClassic   = "CLASSIC"
	ClassInstant   = "INSTANT"
	ClassPermanent = "PERMANENT"
)

// Порог суммы, выше которого записи журнала создаются в статусе PENDING
// и ждут ручного одобрения (строго больше: ровно 5000 — APPROVED).
var PendingThreshold = decimal.NewFromInt(5000)

var (
	classicFeeRate = decimal.NewFromFloat(0.01)
	instantFeeRate = decimal.NewFromFloat(0.02)
)

// Fee вычисляет комиссию перевода по его классу. Чистая функция: никаких
// побочных эффектов, в том числе для PERMANENT — планирование регулярного
// перевода выполняется отдельной явной операцией.
//
// Округление: half away from zero до 2 знаков (минимальная денежная единица),
// применяется один раз при вычислении комиссии.
func Fee(transferClass string, amount decimal.Decimal) (decimal.Decimal, error) {
	switch transferClass {
	case ClassClassic:
		return amount.Mul(classicFeeRate).Round(2), nil
	case ClassInstant:
		return amount.Mul(instantFeeRate).Round(2), nil
	case ClassPermanent:
		// Регулярные переводы не несут комиссии
		return decimal.Zero, nil
	default:
		return decimal.Zero, ErrInvalidTransferClass
	}
}

// SettlementStatus возвращает статус расчета для пары записей журнала
// по сумме перевода: больше порога — PENDING, иначе APPROVED.
func SettlementStatus(amount decimal.Decimal) string {
	if amount.GreaterThan(PendingThreshold) {
		return models.EntryStatusPending
	}
	return models.EntryStatusApproved
}
