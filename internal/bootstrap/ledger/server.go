package ledger

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"bank-ledger-system/config"
	_ "bank-ledger-system/docs" // Swagger docs
	"bank-ledger-system/internal/api/rest"
	"bank-ledger-system/internal/logger"
	"bank-ledger-system/internal/scheduler"
	"bank-ledger-system/internal/search"
)

// StartLedgerService запускает сервис журнала и переводов
func StartLedgerService() {
	cfg := config.Load()

	// Инициализация зависимостей
	deps, err := InitializeDependencies(cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize dependencies", zap.Error(err))
	}
	defer deps.Close()

	// Запуск планировщика постоянных поручений
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner := scheduler.NewRunner(deps.Scheduler, cfg.Scheduler.Interval)
	runner.Start(ctx)

	// Настройка REST API
	var index search.IndexInterface
	if deps.SearchClient != nil {
		index = deps.SearchClient
	}

	handlers := rest.NewHandlers(deps.TransferEngine, deps.AccountService, deps.Scheduler, index)
	router := rest.SetupRouter(handlers)

	// Запуск HTTP сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.LedgerPort),
		Handler: router,
	}

	go func() {
		logger.Log.Info("Ledger Service starting", zap.Int("port", cfg.Server.LedgerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down server")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Log.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("server exited")
}
