package jobs

import (
	"fmt"
	"log/slog"

	"routerorders/internal/core/application/usecases/commands"
	"routerorders/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	trackingBackfillJob *TrackingBackfillJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	untrackedHandler queries.GetUntrackedOrdersQueryHandler,
	createTrackingHandler commands.CreateTrackingCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		trackingBackfillJob: NewTrackingBackfillJob(untrackedHandler, createTrackingHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.trackingBackfillJob.Start(); err != nil {
		return fmt.Errorf("failed to start tracking backfill job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingBackfillJob.Stop()
}
