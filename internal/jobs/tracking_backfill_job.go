package jobs

import (
	"context"
	"log/slog"

	"routerorders/internal/core/application/usecases/commands"
	"routerorders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// TrackingBackfillJob periodically activates tracking for orders that have
// no tracking record. Runs every minute.
type TrackingBackfillJob struct {
	untrackedHandler queries.GetUntrackedOrdersQueryHandler
	createHandler    commands.CreateTrackingCommandHandler
	cron             *cron.Cron
	logger           *slog.Logger
}

// NewTrackingBackfillJob creates the backfill sweep. Uses the untracked
// orders query to find gaps and the create tracking handler to close them.
func NewTrackingBackfillJob(
	untrackedHandler queries.GetUntrackedOrdersQueryHandler,
	createHandler commands.CreateTrackingCommandHandler,
	logger *slog.Logger,
) *TrackingBackfillJob {
	return &TrackingBackfillJob{
		untrackedHandler: untrackedHandler,
		createHandler:    createHandler,
		cron:             cron.New(cron.WithSeconds()),
		logger:           logger.With("component", "tracking_backfill_job"),
	}
}

// Start begins the backfill job to run every minute.
func (j *TrackingBackfillJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking backfill job started (running every minute)")
	return nil
}

// Stop stops the backfill job.
func (j *TrackingBackfillJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking backfill job stopped")
}

func (j *TrackingBackfillJob) runOnce() {
	ctx := context.Background()

	untracked, err := j.untrackedHandler.Handle(ctx, queries.NewGetUntrackedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Tracking backfill sweep failed", "error", err)
		return
	}

	activated := 0
	for _, o := range untracked {
		cmd, cmdErr := commands.NewCreateTrackingCommand(o.ID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Tracking backfill skipped order",
				"orderId", o.ID, "error", cmdErr)
			continue
		}

		// One failing order must not stop the sweep; it is retried next run.
		if _, handleErr := j.createHandler.Handle(ctx, cmd); handleErr != nil {
			j.logger.WarnContext(ctx, "Tracking backfill could not activate tracking",
				"orderId", o.ID, "reference", o.Reference, "error", handleErr)
			continue
		}
		activated++
	}

	if activated > 0 {
		j.logger.InfoContext(ctx, "Tracking backfill activated tracking",
			"count", activated)
	}
}
