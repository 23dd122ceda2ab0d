package jobs

import (
	"fmt"
	"log/slog"

	"diner/internal/core/application/usecases/queries"
)

// JobManager coordinates the scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	workingSetStatsJob *WorkingSetStatsJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	getAllDishes queries.GetAllDishesQueryHandler,
	getAllOrders queries.GetAllOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		workingSetStatsJob: NewWorkingSetStatsJob(getAllDishes, getAllOrders, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.workingSetStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start working set stats job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.workingSetStatsJob.Stop()
}
