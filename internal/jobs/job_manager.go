package jobs

import (
	"fmt"
	"log/slog"

	"orderflow/internal/core/domain/services"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop background jobs.
type JobManager struct {
	quotaCleanupJob *QuotaCleanupJob
}

// NewJobManager creates a job manager wired to the shared quota tracker.
func NewJobManager(tracker *services.DailyQuotaTracker, logger *slog.Logger) *JobManager {
	return &JobManager{
		quotaCleanupJob: NewQuotaCleanupJob(tracker, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.quotaCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start quota cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.quotaCleanupJob.Stop()
}
