// Package jobs provides scheduled background tasks.
//
// Jobs use github.com/robfig/cron/v3 and are managed through JobManager,
// which offers a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(getAllDishes, getAllOrders, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is WorkingSetStatsJob, which logs the dish and order
// counts once a minute.
package jobs
