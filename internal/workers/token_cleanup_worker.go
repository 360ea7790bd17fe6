package workers

import (
	"context"
	"time"

	"frontdoor_backend/internal/logger"
	"frontdoor_backend/internal/repositories"

	"gorm.io/gorm"
)

// TokenCleanupWorker периодически удаляет протухшие refresh-токены
type TokenCleanupWorker struct {
	db        *gorm.DB
	tokenRepo repositories.RefreshTokenRepository
	interval  time.Duration
}

func NewTokenCleanupWorker(db *gorm.DB, tokenRepo repositories.RefreshTokenRepository) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		db:        db,
		tokenRepo: tokenRepo,
		interval:  6 * time.Hour,
	}
}

// Start запускает фоновую чистку
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *TokenCleanupWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.WorkerLog("token_cleanup", "stopped", nil)
			return
		case <-ticker.C:
			count, err := w.tokenRepo.DeleteExpired(w.db)
			if err != nil {
				logger.WorkerLog("token_cleanup", "delete_expired", err)
				continue
			}
			if count > 0 {
				logger.Info("Expired refresh tokens pruned", "count", count)
			}
		}
	}
}
