package jobs

import (
	"context"
	"log/slog"

	"diner/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// WorkingSetStatsJob periodically logs the size of the in-memory working
// set. With no durable storage behind the service, the log stream is the
// only place these numbers survive a restart.
type WorkingSetStatsJob struct {
	dishes queries.GetAllDishesQueryHandler
	orders queries.GetAllOrdersQueryHandler
	cron   *cron.Cron
	logger *slog.Logger
}

// NewWorkingSetStatsJob creates a job that logs dish and order counts once
// a minute.
func NewWorkingSetStatsJob(
	dishes queries.GetAllDishesQueryHandler,
	orders queries.GetAllOrdersQueryHandler,
	logger *slog.Logger,
) *WorkingSetStatsJob {
	return &WorkingSetStatsJob{
		dishes: dishes,
		orders: orders,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "working_set_stats_job"),
	}
}

// Start begins the stats job, running at the top of every minute.
func (j *WorkingSetStatsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		dishes, err := j.dishes.Handle(ctx, queries.NewGetAllDishesQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Working set stats job failed to list dishes", "error", err)
			return
		}

		orders, err := j.orders.Handle(ctx, queries.NewGetAllOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Working set stats job failed to list orders", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Working set stats",
			"dishes", len(dishes),
			"orders", len(orders),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Working set stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *WorkingSetStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Working set stats job stopped")
}
