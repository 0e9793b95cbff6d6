package services

import (
	"errors"
	"testing"
	"time"

	kafkamocks "bank-ledger-system/internal/kafka/mocks"
	"bank-ledger-system/internal/ledger"
	"bank-ledger-system/internal/models"
	"bank-ledger-system/internal/storage"
	storagemocks "bank-ledger-system/internal/storage/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEngine() (TransferEngine, *storagemocks.MockAccountRepository, *storagemocks.MockLedgerRepository, *kafkamocks.MockProducer) {
	mockAccounts := new(storagemocks.MockAccountRepository)
	mockEntries := new(storagemocks.MockLedgerRepository)
	mockProducer := new(kafkamocks.MockProducer)
	engine := NewTransferEngine(mockAccounts, mockEntries, mockProducer)
	return engine, mockAccounts, mockEntries, mockProducer
}

func TestNewTransferEngine(t *testing.T) {
	engine, mockAccounts, mockEntries, mockProducer := newTestEngine()

	require.NotNil(t, engine)
	impl, ok := engine.(*TransferEngineImpl)
	require.True(t, ok)
	assert.Equal(t, mockAccounts, impl.accounts)
	assert.Equal(t, mockEntries, impl.entries)
	assert.Equal(t, mockProducer, impl.producer)
}

func TestTransferEngine_Transfer_ClassicSuccess(t *testing.T) {
	engine, mockAccounts, mockEntries, mockProducer := newTestEngine()

	source := &models.Account{ID: 1, OwnerUserID: 42, Balance: decimal.NewFromInt(1000)}
	dest := &models.Account{ID: 2, OwnerUserID: 7, AccountNumber: "444455556666"}
	ts := time.Now().UTC()
	debit := &models.LedgerEntry{ID: 100, AccountID: 1, OwnerUserID: 42, Amount: decimal.NewFromInt(100), Type: models.EntryTypeDebit, Timestamp: ts, Status: models.EntryStatusApproved}
	credit := &models.LedgerEntry{ID: 101, AccountID: 2, OwnerUserID: 7, Amount: decimal.NewFromInt(100), Type: models.EntryTypeCredit, Timestamp: ts, Status: models.EntryStatusApproved}

	mockAccounts.On("GetAccountByID", int64(1)).Return(source, nil)
	mockAccounts.On("GetAccountByNumber", "444455556666").Return(dest, nil)
	mockEntries.On("ApplyTransfer", mock.MatchedBy(func(app *storage.TransferApplication) bool {
		return app.FromAccountID == 1 &&
			app.ToAccountID == 2 &&
			app.Amount.Equal(decimal.NewFromInt(100)) &&
			app.Fee.Equal(decimal.RequireFromString("1.00")) &&
			app.Status == models.EntryStatusApproved
	})).Return(debit, credit, nil)
	// Обе записи пары уходят в индекс
	mockProducer.On("SendLedgerEvent", mock.AnythingOfType("*models.KafkaLedgerEvent")).Return(nil).Twice()

	result, err := engine.Transfer(&models.TransferRequest{
		FromAccountID:   1,
		ToAccountNumber: "444455556666",
		Amount:          decimal.NewFromInt(100),
		TransferClass:   ledger.ClassClassic,
	}, 42)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, debit, result.DebitEntry)
	assert.Equal(t, credit, result.CreditEntry)
	assert.True(t, result.Fee.Equal(decimal.RequireFromString("1.00")))
	assert.True(t, result.TotalDebited.Equal(decimal.RequireFromString("101.00")))
	assert.Equal(t, models.EntryStatusApproved, result.Status)

	mockAccounts.AssertExpectations(t)
	mockEntries.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestTransferEngine_Transfer_InvalidAmount(t *testing.T) {
	engine, mockAccounts, _, _ := newTestEngine()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		result, err := engine.Transfer(&models.TransferRequest{
			FromAccountID: 1,
			ToAccountID:   2,
			Amount:        amount,
			TransferClass: ledger.ClassClassic,
		}, 42)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	}

	mockAccounts.AssertNotCalled(t, "GetAccountByID", mock.Anything)
}

func TestTransferEngine_Transfer_InvalidClass(t *testing.T) {
	engine, mockAccounts, _, _ := newTestEngine()

	result, err := engine.Transfer(&models.TransferRequest{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        decimal.NewFromInt(100),
		TransferClass: "EXPRESS",
	}, 42)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ledger.ErrInvalidTransferClass)
	// Класс проверяется до обращения к счетам
	mockAccounts.AssertNotCalled(t, "GetAccountByID", mock.Anything)
}

func TestTransferEngine_Transfer_SourceNotFound(t *testing.T) {
	engine, mockAccounts, mockEntries, _ := newTestEngine()

	mockAccounts.On("GetAccountByID", int64(99)).Return(nil, nil)

	result, err := engine.Transfer(&models.TransferRequest{
		FromAccountID: 99,
		ToAccountID:   2,
		Amount:        decimal.NewFromInt(100),
		TransferClass: ledger.ClassClassic,
	}, 42)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	mockEntries.AssertNotCalled(t, "ApplyTransfer", mock.Anything)
}

func TestTransferEngine_Transfer_Unauthorized(t *testing.T) {
	engine, mockAccounts, mockEntries, _ := newTestEngine()

	source := &models.Account{ID: 1, OwnerUserID: 7}
	mockAccounts.On("GetAccountByID", int64(1)).Return(source, nil)

	result, err := engine.Transfer(&models.TransferRequest{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        decimal.NewFromInt(100),
		TransferClass: ledger.ClassClassic,
	}, 42)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ledger.ErrUnauthorized)
	// Владение проверяется до разрешения счета-назначения
	mockAccounts.AssertNotCalled(t, "GetAccountByID", int64(2))
	mockEntries.AssertNotCalled(t, "ApplyTransfer", mock.Anything)
}

func TestTransferEngine_Transfer_DestinationNotFound(t *testing.T) {
	engine, mockAccounts, mockEntries, _ := newTestEngine()

	source := &models.Account{ID: 1, OwnerUserID: 42}
	mockAccounts.On("GetAccountByID", int64(1)).Return(source, nil)
	mockAccounts.On("GetAccountByNumber", "000000000000").Return(nil, nil)

	result, err := engine.Transfer(&models.TransferRequest{
		FromAccountID:   1,
		ToAccountNumber: "000000000000",
		Amount:          decimal.NewFromInt(100),
		TransferClass:   ledger.ClassClassic,
	}, 42)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
	mockEntries.AssertNotCalled(t, "ApplyTransfer", mock.Anything)
}

func TestTransferEngine_Transfer_InsufficientFunds(t *testing.T) {
	engine, mockAccounts, mockEntries, mockProducer := newTestEngine()

	source := &models.Account{ID: 1, OwnerUserID: 42, Balance: decimal.NewFromInt(50)}
	dest := &models.Account{ID: 2, OwnerUserID: 7}

	mockAccounts.On("GetAccountByID", int64(1)).Return(source, nil)
	mockAccounts.On("GetAccountByID", int64(2)).Return(dest, nil)
	mockEntries.On("ApplyTransfer", mock.AnythingOfType("*storage.TransferApplication")).
		Return(nil, nil, ledger.ErrInsufficientFunds)

	result, err := engine.Transfer(&models.TransferRequest{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        decimal.NewFromInt(100),
		TransferClass: ledger.ClassClassic,
	}, 42)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	// Ничего не записано, в индекс ничего не уходит
	mockProducer.AssertNotCalled(t, "SendLedgerEvent", mock.Anything)
}

func TestTransferEngine_Transfer_LargeAmountPending(t *testing.T) {
	engine, mockAccounts, mockEntries, mockProducer := newTestEngine()

	source := &models.Account{ID: 1, OwnerUserID: 42, Balance: decimal.NewFromInt(10000)}
	dest := &models.Account{ID: 2, OwnerUserID: 7}
	debit := &models.LedgerEntry{ID: 100, AccountID: 1, Status: models.EntryStatusPending}
	credit := &models.LedgerEntry{ID: 101, AccountID: 2, Status: models.EntryStatusPending}

	mockAccounts.On("GetAccountByID", int64(1)).Return(source, nil)
	mockAccounts.On("GetAccountByID", int64(2)).Return(dest, nil)
	mockEntries.On("ApplyTransfer", mock.MatchedBy(func(app *storage.TransferApplication) bool {
		return app.Status == models.EntryStatusPending
	})).Return(debit, credit, nil)
	mockProducer.On("SendLedgerEvent", mock.AnythingOfType("*models.KafkaLedgerEvent")).Return(nil).Twice()

	result, err := engine.Transfer(&models.TransferRequest{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        decimal.RequireFromString("5000.01"),
		TransferClass: ledger.ClassPermanent,
	}, 42)

	require.NoError(t, err)
	assert.Equal(t, models.EntryStatusPending, result.Status)
	mockEntries.AssertExpectations(t)
}

func TestTransferEngine_Transfer_IndexForwardFailureNonFatal(t *testing.T) {
	engine, mockAccounts, mockEntries, mockProducer := newTestEngine()

	source := &models.Account{ID: 1, OwnerUserID: 42}
	dest := &models.Account{ID: 2, OwnerUserID: 7}
	debit := &models.LedgerEntry{ID: 100, AccountID: 1}
	credit := &models.LedgerEntry{ID: 101, AccountID: 2}

	mockAccounts.On("GetAccountByID", int64(1)).Return(source, nil)
	mockAccounts.On("GetAccountByID", int64(2)).Return(dest, nil)
	mockEntries.On("ApplyTransfer", mock.AnythingOfType("*storage.TransferApplication")).
		Return(debit, credit, nil)
	mockProducer.On("SendLedgerEvent", mock.AnythingOfType("*models.KafkaLedgerEvent")).
		Return(errors.New("kafka unavailable")).Twice()

	result, err := engine.Transfer(&models.TransferRequest{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        decimal.NewFromInt(100),
		TransferClass: ledger.ClassClassic,
	}, 42)

	// Журнал записан, перевод успешен несмотря на отказ индекса
	require.NoError(t, err)
	require.NotNil(t, result)
	mockProducer.AssertExpectations(t)
}

func TestTransferEngine_ExecuteScheduled_SkipsOwnership(t *testing.T) {
	engine, mockAccounts, mockEntries, mockProducer := newTestEngine()

	// Источник принадлежит пользователю 7, вызов идет от планировщика
	source := &models.Account{ID: 1, OwnerUserID: 7}
	dest := &models.Account{ID: 2, OwnerUserID: 8, AccountNumber: "444455556666"}
	debit := &models.LedgerEntry{ID: 100, AccountID: 1}
	credit := &models.LedgerEntry{ID: 101, AccountID: 2}

	mockAccounts.On("GetAccountByID", int64(1)).Return(source, nil)
	mockAccounts.On("GetAccountByNumber", "444455556666").Return(dest, nil)
	mockEntries.On("ApplyTransfer", mock.MatchedBy(func(app *storage.TransferApplication) bool {
		// Регулярные переводы идут классом PERMANENT без комиссии
		return app.Fee.IsZero()
	})).Return(debit, credit, nil)
	mockProducer.On("SendLedgerEvent", mock.AnythingOfType("*models.KafkaLedgerEvent")).Return(nil).Twice()

	result, err := engine.ExecuteScheduled(1, "444455556666", decimal.NewFromInt(300))

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Fee.IsZero())
	mockEntries.AssertExpectations(t)
}

func TestTransferEngine_SetEntryStatus_Success(t *testing.T) {
	engine, _, mockEntries, mockProducer := newTestEngine()

	updated := &models.LedgerEntry{ID: 100, AccountID: 1, Status: models.EntryStatusApproved}
	mockEntries.On("UpdateEntryStatus", int64(100), models.EntryStatusApproved).Return(updated, nil)
	mockProducer.On("SendLedgerEvent", mock.AnythingOfType("*models.KafkaLedgerEvent")).Return(nil).Once()

	entry, err := engine.SetEntryStatus(100, models.EntryStatusApproved)

	require.NoError(t, err)
	assert.Equal(t, updated, entry)
	mockEntries.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestTransferEngine_SetEntryStatus_InvalidTarget(t *testing.T) {
	engine, _, mockEntries, _ := newTestEngine()

	entry, err := engine.SetEntryStatus(100, models.EntryStatusPending)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ledger.ErrInvalidStatus)
	mockEntries.AssertNotCalled(t, "UpdateEntryStatus", mock.Anything, mock.Anything)
}

func TestTransferEngine_SetEntryStatus_NotFound(t *testing.T) {
	engine, _, mockEntries, mockProducer := newTestEngine()

	mockEntries.On("UpdateEntryStatus", int64(100), models.EntryStatusRejected).
		Return(nil, ledger.ErrEntryNotFound)

	entry, err := engine.SetEntryStatus(100, models.EntryStatusRejected)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ledger.ErrEntryNotFound)
	mockProducer.AssertNotCalled(t, "SendLedgerEvent", mock.Anything)
}
