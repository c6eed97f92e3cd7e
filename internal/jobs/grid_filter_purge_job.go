package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"backoffice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// GridFilterPurger deletes saved grid filters older than the command cutoff.
type GridFilterPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeGridFiltersCommand) (int64, error)
}

// GridFilterPurgeJob forgets the grid filters employees stopped using, on a cron schedule.
type GridFilterPurgeJob struct {
	purger    GridFilterPurger
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewGridFilterPurgeJob creates the job. schedule is a six field cron expression, seconds first.
func NewGridFilterPurgeJob(
	purger GridFilterPurger,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *GridFilterPurgeJob {
	return &GridFilterPurgeJob{
		purger:    purger,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "grid_filter_purge_job"),
	}
}

// Run purges once.
func (j *GridFilterPurgeJob) Run(ctx context.Context) (int64, error) {
	cmd, err := commands.NewPurgeGridFiltersCommand(j.retention)
	if err != nil {
		return 0, err
	}
	return j.purger.Handle(ctx, cmd)
}

func (j *GridFilterPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		deleted, err := j.Run(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Grid filter purge failed", "error", err)
			return
		}
		if deleted > 0 {
			j.logger.InfoContext(ctx, "Stale grid filters purged", "deleted", deleted)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Grid filter purge job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Stop waits for a running purge to finish.
func (j *GridFilterPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Grid filter purge job stopped")
}
