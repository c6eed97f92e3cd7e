package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds the schedules of the background jobs.
type Config struct {
	GridFilterPurgeSchedule string
	GridFilterRetention     time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	gridFilterPurgeJob *GridFilterPurgeJob
}

func NewJobManager(purger GridFilterPurger, config Config, logger *slog.Logger) *JobManager {
	return &JobManager{
		gridFilterPurgeJob: NewGridFilterPurgeJob(purger, config.GridFilterPurgeSchedule, config.GridFilterRetention, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.gridFilterPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start grid filter purge job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.gridFilterPurgeJob.Stop()
}
