// Package jobs provides scheduled background tasks for the back-office.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field, so schedules have six fields:
//
//	0 30 3 * * *	every day at 03:30:00
//
// # Available Jobs
//
// GridFilterPurgeJob deletes the saved grid filters that were not updated within the
// retention period. An employee whose filters were purged sees the grid defaults again.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeHandler, jobs.Config{
//		GridFilterPurgeSchedule: "0 30 3 * * *",
//		GridFilterRetention:     90 * 24 * time.Hour,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
