package jobs

import (
	"context"
	"log/slog"
	"time"

	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// CollectionRunJob builds the day's collection worklist each morning and
// logs it for the care desk: every pending or baki order whose care
// ticket promised a visit today, grouped by delivery staff.
type CollectionRunJob struct {
	handler  queries.GetCollectionWorklistQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCollectionRunJob creates the daily collection-run job. The schedule
// is a standard five-field cron expression, typically "0 6 * * *".
func NewCollectionRunJob(
	handler queries.GetCollectionWorklistQueryHandler,
	schedule string,
	logger *slog.Logger,
) *CollectionRunJob {
	return &CollectionRunJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "collection_run_job"),
	}
}

// Start schedules the job.
func (j *CollectionRunJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Collection run job started", "schedule", j.schedule)
	return nil
}

// Run executes one collection run for today. Exposed separately so the
// run can also be triggered outside the schedule.
func (j *CollectionRunJob) Run(ctx context.Context) {
	day := kernel.DayOf(time.Now())

	query, err := queries.NewGetCollectionWorklistQuery(day)
	if err != nil {
		j.logger.ErrorContext(ctx, "Collection run failed to build query", "error", err)
		return
	}

	entries, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Collection run failed", "day", day.String(), "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Collection worklist ready",
		"day", day.String(), "orders", len(entries))

	for _, entry := range entries {
		j.logger.InfoContext(ctx, "Collection visit due",
			"day", day.String(),
			"deliveryStaffId", entry.DeliveryStaffID.String(),
			"orderId", entry.OrderID.String(),
			"businessId", entry.BusinessID,
			"orderStatus", entry.OrderStatus,
			"outstanding", entry.CollectionAmount.Sub(entry.CollectedAmount).String())
	}
}

// Stop stops the job.
func (j *CollectionRunJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Collection run job stopped")
}
