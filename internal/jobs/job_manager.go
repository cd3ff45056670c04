package jobs

import (
	"fmt"
	"log/slog"

	"distribution/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	collectionRunJob *CollectionRunJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	worklistHandler queries.GetCollectionWorklistQueryHandler,
	collectionRunSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		collectionRunJob: NewCollectionRunJob(worklistHandler, collectionRunSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.collectionRunJob.Start(); err != nil {
		return fmt.Errorf("failed to start collection run job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.collectionRunJob.Stop()
}
