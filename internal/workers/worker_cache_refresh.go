package workers

import (
	"context"
	"time"

	"github.com/aivahq/aiva/internal/logger"
	"github.com/aivahq/aiva/internal/service"
)

// CacheRefreshWorker periodically re-fetches the full marketplace listing so
// the locally cached copy stays usable when the server becomes unreachable.
// Fetch failures are logged and retried on the next tick; the service layer
// keeps serving the previous cache in the meantime.
type CacheRefreshWorker struct {
	avatars  service.ClientAvatarService
	interval time.Duration
	logger   *logger.Logger
}

func NewCacheRefreshWorker(avatars service.ClientAvatarService, interval time.Duration, logger *logger.Logger) *CacheRefreshWorker {
	return &CacheRefreshWorker{
		avatars:  avatars,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the refresh loop in its own goroutine. A non-positive interval
// disables the worker.
func (w *CacheRefreshWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Debug().Msg("cache refresh worker disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := w.avatars.List(ctx, ""); err != nil {
					w.logger.Warn().Err(err).Msg("background listing refresh failed")
				}
			}
		}
	}()
}
