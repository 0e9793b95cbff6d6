package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bank-ledger-system/internal/ledger"
	"bank-ledger-system/internal/models"
	"bank-ledger-system/internal/scheduler"
	schedulermocks "bank-ledger-system/internal/scheduler/mocks"
	searchmocks "bank-ledger-system/internal/search/mocks"
	servicemocks "bank-ledger-system/internal/services/mocks"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testMocks struct {
	engine    *servicemocks.MockTransferEngine
	accounts  *servicemocks.MockAccountService
	scheduler *schedulermocks.MockScheduler
	index     *searchmocks.MockIndex
}

func setupTestRouter() (*gin.Engine, *testMocks) {
	gin.SetMode(gin.TestMode)

	m := &testMocks{
		engine:    new(servicemocks.MockTransferEngine),
		accounts:  new(servicemocks.MockAccountService),
		scheduler: new(schedulermocks.MockScheduler),
		index:     new(searchmocks.MockIndex),
	}
	handlers := NewHandlers(m.engine, m.accounts, m.scheduler, m.index)

	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		api.POST("/transfers", handlers.HandleTransfer)
		api.POST("/scheduled-transfers", handlers.HandleScheduleTransfer)
		api.GET("/scheduled-transfers", handlers.GetScheduledTransfers)
		api.DELETE("/scheduled-transfers/:id", handlers.CancelScheduledTransfer)
		api.POST("/scheduled-transfers/run", handlers.RunDueTransfers)
		api.POST("/accounts", handlers.OpenAccount)
		api.GET("/accounts", handlers.GetAccounts)
		api.GET("/accounts/:id", handlers.GetAccount)
		api.PUT("/accounts/:id/status", handlers.SetAccountStatus)
		api.POST("/accounts/:id/deposit", handlers.Deposit)
		api.POST("/accounts/:id/withdraw", handlers.Withdraw)
		api.GET("/accounts/:id/transactions", handlers.GetAccountTransactions)
		api.GET("/history", handlers.GetHistory)
		api.GET("/dashboard", handlers.GetDashboard)
		api.PUT("/entries/:id/status", handlers.SetEntryStatus)
		api.GET("/entries/search", handlers.SearchEntries)
		api.POST("/demo/seed", handlers.SeedDemoData)
	}

	return router, m
}

func doRequest(router *gin.Engine, method, path string, body interface{}, userID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandlers_HandleTransfer_Success(t *testing.T) {
	router, m := setupTestRouter()

	result := &models.TransferResult{
		Fee:          decimal.RequireFromString("1.00"),
		TotalDebited: decimal.RequireFromString("101.00"),
		Status:       models.EntryStatusApproved,
	}
	m.engine.On("Transfer", mock.AnythingOfType("*models.TransferRequest"), int64(42)).Return(result, nil)

	w := doRequest(router, "POST", "/api/v1/transfers", models.TransferRequest{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        decimal.NewFromInt(100),
		TransferClass: ledger.ClassClassic,
	}, "42")

	assert.Equal(t, http.StatusCreated, w.Code)

	var response models.TransferResult
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, models.EntryStatusApproved, response.Status)

	m.engine.AssertExpectations(t)
}

func TestHandlers_HandleTransfer_MissingUserHeader(t *testing.T) {
	router, m := setupTestRouter()

	w := doRequest(router, "POST", "/api/v1/transfers", models.TransferRequest{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        decimal.NewFromInt(100),
		TransferClass: ledger.ClassClassic,
	}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	m.engine.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything)
}

func TestHandlers_HandleTransfer_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid amount", ledger.ErrInvalidAmount, http.StatusBadRequest},
		{"invalid class", ledger.ErrInvalidTransferClass, http.StatusBadRequest},
		{"unauthorized", ledger.ErrUnauthorized, http.StatusForbidden},
		{"account not found", ledger.ErrAccountNotFound, http.StatusNotFound},
		{"insufficient funds", ledger.ErrInsufficientFunds, http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, m := setupTestRouter()
			m.engine.On("Transfer", mock.AnythingOfType("*models.TransferRequest"), int64(42)).Return(nil, tc.err)

			w := doRequest(router, "POST", "/api/v1/transfers", models.TransferRequest{
				FromAccountID: 1,
				ToAccountID:   2,
				Amount:        decimal.NewFromInt(100),
				TransferClass: ledger.ClassClassic,
			}, "42")

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestHandlers_HandleTransfer_InvalidJSON(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("POST", "/api/v1/transfers", bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlers_HandleScheduleTransfer_Success(t *testing.T) {
	router, m := setupTestRouter()

	st := &models.ScheduledTransfer{
		ID:                10,
		FromAccountID:     1,
		ToAccountID:       2,
		Amount:            decimal.NewFromInt(250),
		Frequency:         models.FrequencyWeekly,
		NextExecutionDate: time.Now().AddDate(0, 0, 7),
	}
	m.scheduler.On("Schedule", mock.AnythingOfType("*models.ScheduleRequest"), int64(42)).Return(st, nil)

	w := doRequest(router, "POST", "/api/v1/scheduled-transfers", models.ScheduleRequest{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        decimal.NewFromInt(250),
		Frequency:     models.FrequencyWeekly,
	}, "42")

	assert.Equal(t, http.StatusCreated, w.Code)
	m.scheduler.AssertExpectations(t)
}

func TestHandlers_HandleScheduleTransfer_InvalidFrequency(t *testing.T) {
	router, m := setupTestRouter()

	m.scheduler.On("Schedule", mock.AnythingOfType("*models.ScheduleRequest"), int64(42)).
		Return(nil, ledger.ErrInvalidFrequency)

	w := doRequest(router, "POST", "/api/v1/scheduled-transfers", models.ScheduleRequest{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        decimal.NewFromInt(250),
		Frequency:     "HOURLY",
	}, "42")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlers_GetScheduledTransfers(t *testing.T) {
	router, m := setupTestRouter()

	transfers := []*models.ScheduledTransfer{{ID: 1}, {ID: 2}}
	m.scheduler.On("GetScheduledTransfers", int64(1), 0, 20).Return(transfers, nil)

	w := doRequest(router, "GET", "/api/v1/scheduled-transfers?account_id=1", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string][]models.ScheduledTransfer
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Len(t, result["scheduled_transfers"], 2)
}

func TestHandlers_GetScheduledTransfers_MissingAccountID(t *testing.T) {
	router, _ := setupTestRouter()

	w := doRequest(router, "GET", "/api/v1/scheduled-transfers", nil, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlers_CancelScheduledTransfer(t *testing.T) {
	router, m := setupTestRouter()

	m.scheduler.On("Cancel", int64(5)).Return(nil)

	w := doRequest(router, "DELETE", "/api/v1/scheduled-transfers/5", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	m.scheduler.AssertExpectations(t)
}

func TestHandlers_RunDueTransfers(t *testing.T) {
	router, m := setupTestRouter()

	report := &scheduler.RunReport{Due: 2, Executed: 1, Failed: 1}
	m.scheduler.On("RunDueTransfers", mock.AnythingOfType("time.Time")).Return(report, nil)

	w := doRequest(router, "POST", "/api/v1/scheduled-transfers/run", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var result scheduler.RunReport
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Due)
	assert.Equal(t, 1, result.Executed)
}

func TestHandlers_OpenAccount(t *testing.T) {
	router, m := setupTestRouter()

	acc := &models.Account{ID: 1, OwnerUserID: 42, AccountNumber: "123456789012", Balance: decimal.Zero}
	m.accounts.On("OpenAccount", int64(42)).Return(acc, nil)

	w := doRequest(router, "POST", "/api/v1/accounts", nil, "42")

	assert.Equal(t, http.StatusCreated, w.Code)

	var result models.Account
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", result.AccountNumber)

	m.accounts.AssertExpectations(t)
}

func TestHandlers_GetAccount_NotFound(t *testing.T) {
	router, m := setupTestRouter()

	m.accounts.On("GetAccount", int64(99)).Return(nil, ledger.ErrAccountNotFound)

	w := doRequest(router, "GET", "/api/v1/accounts/99", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlers_SetAccountStatus(t *testing.T) {
	router, m := setupTestRouter()

	m.accounts.On("SetAccountStatus", int64(1), models.AccountStatusFrozen).Return(nil)

	w := doRequest(router, "PUT", "/api/v1/accounts/1/status", map[string]string{"status": "FROZEN"}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	m.accounts.AssertExpectations(t)
}

func TestHandlers_Deposit(t *testing.T) {
	router, m := setupTestRouter()

	after := &models.Account{ID: 1, OwnerUserID: 42, Balance: decimal.NewFromInt(150)}
	m.accounts.On("Deposit", int64(1), int64(42), mock.AnythingOfType("decimal.Decimal")).Return(after, nil)

	w := doRequest(router, "POST", "/api/v1/accounts/1/deposit", map[string]string{"amount": "50"}, "42")

	assert.Equal(t, http.StatusOK, w.Code)
	m.accounts.AssertExpectations(t)
}

func TestHandlers_Withdraw_InsufficientFunds(t *testing.T) {
	router, m := setupTestRouter()

	m.accounts.On("Withdraw", int64(1), int64(42), mock.AnythingOfType("decimal.Decimal")).
		Return(nil, ledger.ErrInsufficientFunds)

	w := doRequest(router, "POST", "/api/v1/accounts/1/withdraw", map[string]string{"amount": "500"}, "42")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandlers_GetAccountTransactions(t *testing.T) {
	router, m := setupTestRouter()

	entries := []*models.LedgerEntry{{ID: 1, Type: models.EntryTypeDebit}}
	m.accounts.On("GetTransactions", int64(1), 0, 20).Return(entries, nil)

	w := doRequest(router, "GET", "/api/v1/accounts/1/transactions", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string][]models.LedgerEntry
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Len(t, result["transactions"], 1)
}

func TestHandlers_GetHistory(t *testing.T) {
	router, m := setupTestRouter()

	history := []*models.HistoryEntry{
		{ID: 1, Direction: models.HistoryDirectionSent},
		{ID: 2, Direction: models.HistoryDirectionReceived},
	}
	m.accounts.On("GetHistory", int64(42), 1, 10).Return(history, nil)

	w := doRequest(router, "GET", "/api/v1/history?page=1&size=10", nil, "42")

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string][]models.HistoryEntry
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Len(t, result["history"], 2)
	m.accounts.AssertExpectations(t)
}

func TestHandlers_GetDashboard(t *testing.T) {
	router, m := setupTestRouter()

	summary := map[string]interface{}{
		"pending_transactions": 3,
		"recent_transactions":  []*models.LedgerEntry{},
	}
	m.accounts.On("GetDashboardSummary").Return(summary, nil)

	w := doRequest(router, "GET", "/api/v1/dashboard", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, float64(3), result["pending_transactions"])
}

func TestHandlers_SetEntryStatus(t *testing.T) {
	router, m := setupTestRouter()

	updated := &models.LedgerEntry{ID: 100, Status: models.EntryStatusApproved}
	m.engine.On("SetEntryStatus", int64(100), models.EntryStatusApproved).Return(updated, nil)

	w := doRequest(router, "PUT", "/api/v1/entries/100/status", map[string]string{"status": "APPROVED"}, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var result models.LedgerEntry
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, models.EntryStatusApproved, result.Status)
}

func TestHandlers_SetEntryStatus_NotFound(t *testing.T) {
	router, m := setupTestRouter()

	m.engine.On("SetEntryStatus", int64(999), models.EntryStatusApproved).
		Return(nil, ledger.ErrEntryNotFound)

	w := doRequest(router, "PUT", "/api/v1/entries/999/status", map[string]string{"status": "APPROVED"}, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlers_SearchEntries(t *testing.T) {
	router, m := setupTestRouter()

	entries := []*models.LedgerEntry{{ID: 1, AccountID: 5, Status: models.EntryStatusPending}}
	m.index.On("Search", mock.MatchedBy(func(c *models.SearchCriteria) bool {
		return c.AccountID == 5 && c.Status == models.EntryStatusPending
	})).Return(entries, nil)

	w := doRequest(router, "GET", "/api/v1/entries/search?account_id=5&status=PENDING", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string][]models.LedgerEntry
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Len(t, result["entries"], 1)
	m.index.AssertExpectations(t)
}

func TestHandlers_SearchEntries_IndexUnavailable(t *testing.T) {
	router, m := setupTestRouter()

	m.index.On("Search", mock.AnythingOfType("*models.SearchCriteria")).
		Return(nil, assert.AnError)

	w := doRequest(router, "GET", "/api/v1/entries/search", nil, "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandlers_SeedDemoData(t *testing.T) {
	router, m := setupTestRouter()

	for userID := int64(1); userID <= 5; userID++ {
		acc := &models.Account{ID: userID, OwnerUserID: userID, Balance: decimal.Zero}
		funded := &models.Account{ID: userID, OwnerUserID: userID, Balance: decimal.NewFromInt(500)}
		m.accounts.On("OpenAccount", userID).Return(acc, nil).Once()
		m.accounts.On("Deposit", userID, userID, mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.IsPositive()
		})).Return(funded, nil).Once()
	}

	w := doRequest(router, "POST", "/api/v1/demo/seed", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, float64(5), result["count"])
	m.accounts.AssertExpectations(t)
}

func TestHandlers_SeedDemoData_OpenFails(t *testing.T) {
	router, m := setupTestRouter()

	m.accounts.On("OpenAccount", int64(1)).Return(nil, assert.AnError)

	w := doRequest(router, "POST", "/api/v1/demo/seed", nil, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	m.accounts.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything, mock.Anything)
}
