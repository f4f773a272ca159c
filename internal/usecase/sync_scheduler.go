package usecase

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/fieldside/clubsync/internal/platform/logging"
)

// SyncScheduler triggers an auto-sync run on a fixed interval so staging
// records don't pile up between manual triggers. Ticks that land while a run
// is still in flight simply join it via the engine's single-flight guard.
type SyncScheduler struct {
	engine   *AutoSyncService
	interval time.Duration
	logger   *logging.Logger

	wg     conc.WaitGroup
	cancel context.CancelFunc
}

func NewSyncScheduler(engine *AutoSyncService, interval time.Duration, logger *logging.Logger) *SyncScheduler {
	if logger == nil {
		logger = logging.Default()
	}
	return &SyncScheduler{engine: engine, interval: interval, logger: logger}
}

// Start launches the ticker goroutine. A non-positive interval disables the
// scheduler entirely; Stop is still safe to call.
func (s *SyncScheduler) Start(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.InfoContext(ctx, "sync scheduler disabled")
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.logger.InfoContext(ctx, "sync scheduler started", "interval", s.interval.String())

	s.wg.Go(func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				report := s.engine.Run(ctx)
				if report.State == SyncStateFailed {
					s.logger.WarnContext(ctx, "scheduled auto-sync failed", "errors", report.Stats.Errors)
				}
			}
		}
	})
}

// Stop cancels the ticker and waits for any in-progress tick to return.
func (s *SyncScheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
}
