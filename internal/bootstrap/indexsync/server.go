package indexsync

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bank-ledger-system/config"
	"bank-ledger-system/internal/api/rest"
	"bank-ledger-system/internal/logger"
)

// StartIndexSyncService запускает сервис синхронизации поискового индекса
func StartIndexSyncService() {
	cfg := config.Load()

	// Инициализация зависимостей
	deps, err := InitializeDependencies(cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize dependencies", zap.Error(err))
	}
	defer deps.Close()

	// Запуск Kafka consumer в отдельной горутине
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		logger.Log.Info("starting Kafka consumer")
		if err := deps.KafkaConsumer.Start(ctx); err != nil {
			logger.Log.Fatal("Kafka consumer error", zap.Error(err))
		}
	}()

	// Настройка REST API
	router := gin.Default()

	// Используем общий CORS middleware
	router.Use(rest.CORSMiddleware())
	router.Use(gin.Logger(), gin.Recovery())

	// Настройка маршрутов
	SetupRoutes(router, deps.SearchClient)

	// Запуск сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.IndexSyncPort),
		Handler: router,
	}

	go func() {
		logger.Log.Info("Index Sync Service starting", zap.Int("port", cfg.Server.IndexSyncPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down services")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Log.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("services exited")
}
