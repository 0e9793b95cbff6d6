package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"bank-ledger-system/internal/generator"
	"bank-ledger-system/internal/ledger"
	"bank-ledger-system/internal/logger"
	"bank-ledger-system/internal/models"
	"bank-ledger-system/internal/scheduler"
	"bank-ledger-system/internal/search"
	"bank-ledger-system/internal/services"
)

type Handlers struct {
	engine    services.TransferEngine
	accounts  services.AccountService
	scheduler scheduler.Service
	index     search.IndexInterface
	demoGen   *generator.DemoDataGenerator
}

// Создает новые обработчики REST API
func NewHandlers(engine services.TransferEngine, accounts services.AccountService, sched scheduler.Service, index search.IndexInterface) *Handlers {
	return &Handlers{
		engine:    engine,
		accounts:  accounts,
		scheduler: sched,
		index:     index,
		demoGen:   generator.NewDemoDataGenerator(),
	}
}

// actingUserID извлекает идентификатор действующего пользователя из заголовка.
// Аутентификация выполняется выше по стеку, сюда приходит уже проверенный id.
func actingUserID(c *gin.Context) (int64, bool) {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid X-User-ID header"})
		return 0, false
	}
	return id, true
}

// respondError переводит ошибку доменного уровня в HTTP-статус
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidTransferClass),
		errors.Is(err, ledger.ErrInvalidFrequency),
		errors.Is(err, ledger.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, ledger.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ledger.ErrInsufficientFunds):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))
	return page, size
}

// HandleTransfer обрабатывает POST запрос на перевод между счетами
// @Summary Выполнить перевод
// @Description Переводит средства между счетами с комиссией по классу перевода (CLASSIC 1%, INSTANT 2%, PERMANENT без комиссии). Создает пару записей журнала DEBIT/CREDIT атомарно. Переводы свыше 5000 получают статус PENDING.
// @Tags transfers
// @Accept json
// @Produce json
// @Param X-User-ID header int true "ID действующего пользователя"
// @Param transfer body models.TransferRequest true "Данные перевода"
// @Success 201 {object} models.TransferResult "Перевод выполнен"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 422 {object} map[string]string "Insufficient Funds"
// @Router /transfers [post]
func (h *Handlers) HandleTransfer(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req models.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.engine.Transfer(&req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleScheduleTransfer обрабатывает POST запрос на создание постоянного поручения
// @Summary Создать постоянное поручение
// @Description Создает регулярный перевод с частотой DAILY, WEEKLY, MONTHLY или YEARLY. Первое исполнение через одну единицу частоты от текущего момента.
// @Tags scheduled-transfers
// @Accept json
// @Produce json
// @Param X-User-ID header int true "ID действующего пользователя"
// @Param schedule body models.ScheduleRequest true "Данные поручения"
// @Success 201 {object} models.ScheduledTransfer "Поручение создано"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /scheduled-transfers [post]
func (h *Handlers) HandleScheduleTransfer(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.scheduler.Schedule(&req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, st)
}

// GetScheduledTransfers возвращает поручения, затрагивающие счет
// @Summary Получить постоянные поручения счета
// @Tags scheduled-transfers
// @Produce json
// @Param account_id query int true "ID счета"
// @Param page query int false "Номер страницы" default(0)
// @Param size query int false "Размер страницы" default(20)
// @Success 200 {object} map[string]interface{} "Список поручений"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /scheduled-transfers [get]
func (h *Handlers) GetScheduledTransfers(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Query("account_id"), 10, 64)
	if err != nil || accountID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account_id query parameter is required"})
		return
	}

	page, size := pageParams(c)
	transfers, err := h.scheduler.GetScheduledTransfers(accountID, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scheduled_transfers": transfers})
}

// CancelScheduledTransfer удаляет постоянное поручение
// @Summary Отменить постоянное поручение
// @Tags scheduled-transfers
// @Produce json
// @Param id path int true "ID поручения"
// @Success 200 {object} map[string]string "Поручение отменено"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /scheduled-transfers/{id} [delete]
func (h *Handlers) CancelScheduledTransfer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scheduled transfer id"})
		return
	}

	if err := h.scheduler.Cancel(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Scheduled transfer cancelled"})
}

// RunDueTransfers вручную запускает проход планировщика
// @Summary Запустить исполнение поручений
// @Description Исполняет все поручения с наступившей датой. Обычно вызывается внутренним таймером, endpoint оставлен для операциониста.
// @Tags scheduled-transfers
// @Produce json
// @Success 200 {object} scheduler.RunReport "Итог прохода"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /scheduled-transfers/run [post]
func (h *Handlers) RunDueTransfers(c *gin.Context) {
	report, err := h.scheduler.RunDueTransfers(time.Now().UTC())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// OpenAccount открывает новый счет для действующего пользователя
// @Summary Открыть счет
// @Description Открывает счет с уникальным 12-значным номером и нулевым балансом
// @Tags accounts
// @Produce json
// @Param X-User-ID header int true "ID действующего пользователя"
// @Success 201 {object} models.Account "Счет открыт"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /accounts [post]
func (h *Handlers) OpenAccount(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	acc, err := h.accounts.OpenAccount(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.LogEvent(logger.EventAccountOpened, "ledger-service", "api", map[string]interface{}{
		"account_id":     acc.ID,
		"account_number": acc.AccountNumber,
		"owner_user_id":  acc.OwnerUserID,
	})

	c.JSON(http.StatusCreated, acc)
}

// GetAccount возвращает счет по id
// @Summary Получить счет
// @Tags accounts
// @Produce json
// @Param id path int true "ID счета"
// @Success 200 {object} models.Account "Счет"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /accounts/{id} [get]
func (h *Handlers) GetAccount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
		return
	}

	acc, err := h.accounts.GetAccount(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, acc)
}

// GetAccounts возвращает счета действующего пользователя
// @Summary Получить счета пользователя
// @Tags accounts
// @Produce json
// @Param X-User-ID header int true "ID действующего пользователя"
// @Param page query int false "Номер страницы" default(0)
// @Param size query int false "Размер страницы" default(20)
// @Success 200 {object} map[string]interface{} "Список счетов"
// @Router /accounts [get]
func (h *Handlers) GetAccounts(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	page, size := pageParams(c)
	accounts, err := h.accounts.GetAccountsByUser(userID, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// SetAccountStatus административно меняет статус счета
// @Summary Изменить статус счета
// @Description Переводит счет в статус ACTIVE, INACTIVE или FROZEN
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "ID счета"
// @Param status body object true "Новый статус"
// @Success 200 {object} map[string]string "Статус изменен"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /accounts/{id}/status [put]
func (h *Handlers) SetAccountStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.accounts.SetAccountStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account status updated"})
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// Deposit пополняет счет действующего пользователя
// @Summary Пополнить счет
// @Tags accounts
// @Accept json
// @Produce json
// @Param X-User-ID header int true "ID действующего пользователя"
// @Param id path int true "ID счета"
// @Param amount body object true "Сумма"
// @Success 200 {object} models.Account "Счет после пополнения"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /accounts/{id}/deposit [post]
func (h *Handlers) Deposit(c *gin.Context) {
	h.adjustBalance(c, h.accounts.Deposit)
}

// Withdraw снимает средства со счета действующего пользователя
// @Summary Снять средства
// @Tags accounts
// @Accept json
// @Produce json
// @Param X-User-ID header int true "ID действующего пользователя"
// @Param id path int true "ID счета"
// @Param amount body object true "Сумма"
// @Success 200 {object} models.Account "Счет после снятия"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 422 {object} map[string]string "Insufficient Funds"
// @Router /accounts/{id}/withdraw [post]
func (h *Handlers) Withdraw(c *gin.Context) {
	h.adjustBalance(c, h.accounts.Withdraw)
}

func (h *Handlers) adjustBalance(c *gin.Context, op func(accountID, actingUserID int64, amount decimal.Decimal) (*models.Account, error)) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
		return
	}

	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acc, err := op(id, userID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, acc)
}

// GetAccountTransactions возвращает записи журнала по счету
// @Summary Получить операции счета
// @Tags accounts
// @Produce json
// @Param id path int true "ID счета"
// @Param page query int false "Номер страницы" default(0)
// @Param size query int false "Размер страницы" default(20)
// @Success 200 {object} map[string]interface{} "Записи журнала"
// @Router /accounts/{id}/transactions [get]
func (h *Handlers) GetAccountTransactions(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
		return
	}

	page, size := pageParams(c)
	entries, err := h.accounts.GetTransactions(id, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": entries})
}

// GetHistory возвращает историю операций действующего пользователя
// @Summary Получить историю пользователя
// @Description Возвращает записи журнала по всем счетам пользователя с направлением SENT или RECEIVED
// @Tags history
// @Produce json
// @Param X-User-ID header int true "ID действующего пользователя"
// @Param page query int false "Номер страницы" default(0)
// @Param size query int false "Размер страницы" default(20)
// @Success 200 {object} map[string]interface{} "История операций"
// @Router /history [get]
func (h *Handlers) GetHistory(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	page, size := pageParams(c)
	history, err := h.accounts.GetHistory(userID, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// GetDashboard возвращает сводку для операциониста
// @Summary Получить сводку
// @Description Возвращает число записей, ожидающих одобрения, и последние операции
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Сводка"
// @Router /dashboard [get]
func (h *Handlers) GetDashboard(c *gin.Context) {
	summary, err := h.accounts.GetDashboardSummary()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// SetEntryStatus переводит PENDING запись журнала в APPROVED или REJECTED
// @Summary Изменить статус записи журнала
// @Description Хук для воркфлоу одобрения: применим только к записям в статусе PENDING. Отклонение меняет только статус, средства не возвращаются.
// @Tags entries
// @Accept json
// @Produce json
// @Param id path int true "ID записи журнала"
// @Param status body object true "Новый статус (APPROVED или REJECTED)"
// @Success 200 {object} models.LedgerEntry "Запись после изменения"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /entries/{id}/status [put]
func (h *Handlers) SetEntryStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.engine.SetEntryStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// SearchEntries ищет записи журнала через поисковый индекс
// @Summary Поиск по записям журнала
// @Description Ищет записи в Redis-индексе. Индекс наполняется асинхронно, свежие записи могут появиться с задержкой.
// @Tags entries
// @Produce json
// @Param account_id query int false "ID счета"
// @Param amount query string false "Точная сумма"
// @Param type query string false "Тип записи (DEBIT или CREDIT)"
// @Param status query string false "Статус записи"
// @Param start_date query string false "Начало периода (RFC3339)"
// @Param end_date query string false "Конец периода (RFC3339)"
// @Success 200 {object} map[string]interface{} "Найденные записи"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Index Unavailable"
// @Router /entries/search [get]
func (h *Handlers) SearchEntries(c *gin.Context) {
	if h.index == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search index is unavailable"})
		return
	}

	criteria := &models.SearchCriteria{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}

	if raw := c.Query("account_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account_id"})
			return
		}
		criteria.AccountID = id
	}

	if raw := c.Query("amount"); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}
		criteria.Amount = &amount
	}

	if raw := c.Query("start_date"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date"})
			return
		}
		criteria.StartDate = &ts
	}

	if raw := c.Query("end_date"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date"})
			return
		}
		criteria.EndDate = &ts
	}

	entries, err := h.index.Search(criteria)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search index is unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// SeedDemoData наполняет систему демонстрационными счетами (для разработки и тестов)
// @Summary Создать демонстрационные счета
// @Description Открывает по счету для нескольких пользователей и пополняет каждый случайной суммой. Предназначено для локальной разработки.
// @Tags demo
// @Produce json
// @Success 200 {object} map[string]interface{} "Созданные счета"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /demo/seed [post]
func (h *Handlers) SeedDemoData(c *gin.Context) {
	seeded := make([]*models.Account, 0, 5)

	for userID := int64(1); userID <= 5; userID++ {
		account, err := h.accounts.OpenAccount(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open demo account"})
			return
		}

		funded, err := h.accounts.Deposit(account.ID, userID, h.demoGen.Amount())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fund demo account"})
			return
		}

		seeded = append(seeded, funded)
	}

	c.JSON(http.StatusOK, gin.H{
		"accounts": seeded,
		"count":    len(seeded),
	})
}
