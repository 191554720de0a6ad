package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderflow/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// QuotaCleanupJob prunes quota buckets of past UTC days from the
// DailyQuotaTracker. Counters only matter for the current day; without
// pruning the tracker would grow by one bucket per product per day forever.
type QuotaCleanupJob struct {
	tracker *services.DailyQuotaTracker
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuotaCleanupJob creates a cleanup job for the given tracker.
func NewQuotaCleanupJob(tracker *services.DailyQuotaTracker, logger *slog.Logger) *QuotaCleanupJob {
	return &QuotaCleanupJob{
		tracker: tracker,
		cron:    cron.New(cron.WithLocation(time.UTC)),
		logger:  logger.With("component", "quota_cleanup_job"),
	}
}

// Start schedules the cleanup shortly after every UTC midnight.
func (j *QuotaCleanupJob) Start() error {
	_, err := j.cron.AddFunc("5 0 * * *", func() {
		ctx := context.Background()
		removed := j.tracker.PruneBefore(time.Now().UTC())
		if removed > 0 {
			j.logger.InfoContext(ctx, "pruned expired quota buckets", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quota cleanup job started (running daily at 00:05 UTC)")
	return nil
}

// Stop stops the cleanup job.
func (j *QuotaCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quota cleanup job stopped")
}
