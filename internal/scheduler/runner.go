package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bank-ledger-system/internal/logger"
)

// Runner периодически запускает обработку регулярных переводов.
// Один логический таймер на процесс: состояние поручений имеет
// единственного писателя.
type Runner struct {
	scheduler Service
	interval  time.Duration
}

func NewRunner(scheduler Service, interval time.Duration) *Runner {
	return &Runner{
		scheduler: scheduler,
		interval:  interval,
	}
}

// Start запускает цикл таймера до отмены контекста
func (r *Runner) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)

	go func() {
		defer ticker.Stop()

		logger.Log.Info("scheduled transfer runner started",
			zap.Duration("interval", r.interval),
		)

		for {
			select {
			case <-ctx.Done():
				logger.Log.Info("scheduled transfer runner stopped")
				return
			case <-ticker.C:
				report, err := r.scheduler.RunDueTransfers(time.Now().UTC())
				if err != nil {
					logger.Log.Error("scheduled transfer run failed", zap.Error(err))
					continue
				}
				logger.Log.Info("scheduled transfer run completed",
					zap.Int("due", report.Due),
					zap.Int("executed", report.Executed),
					zap.Int("failed", report.Failed),
					zap.Int("expired", report.Expired),
				)
			}
		}
	}()
}
