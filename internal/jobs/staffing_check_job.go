package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// StaffingCheckJob watches the next service day's duty roster. Status
// transitions are authorized against the roster, so a missing or understaffed
// roster silently blocks the whole kitchen the next morning; this job
// surfaces the gap a day ahead.
type StaffingCheckJob struct {
	handler      queries.GetDayRosterQueryHandler
	minHeadcount int
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewStaffingCheckJob creates a job that checks tomorrow's roster every hour.
func NewStaffingCheckJob(
	handler queries.GetDayRosterQueryHandler,
	minHeadcount int,
	logger *slog.Logger,
) *StaffingCheckJob {
	return &StaffingCheckJob{
		handler:      handler,
		minHeadcount: minHeadcount,
		cron:         cron.New(),
		logger:       logger.With("component", "staffing_check_job"),
	}
}

// Start begins the staffing check job on an hourly schedule.
func (j *StaffingCheckJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		j.Run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Staffing check job started (running hourly)")
	return nil
}

// Run checks tomorrow's roster once. Exposed so the check also runs at
// startup instead of waiting for the first tick.
func (j *StaffingCheckJob) Run(ctx context.Context) {
	tomorrow := kernel.DateFromTime(time.Now().AddDate(0, 0, 1))

	query, err := queries.NewGetDayRosterQuery(tomorrow)
	if err != nil {
		j.logger.ErrorContext(ctx, "Staffing check failed to build query", "error", err)
		return
	}

	dayRoster, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Staffing check failed", "error", err)
		return
	}

	if !dayRoster.HasRoster() {
		j.logger.WarnContext(ctx, "No roster assigned for next service day",
			"date", tomorrow.String())
		return
	}

	if len(dayRoster.Cooking) < j.minHeadcount {
		j.logger.WarnContext(ctx, "Cooking duty understaffed for next service day",
			"date", tomorrow.String(),
			"assigned", len(dayRoster.Cooking),
			"required", j.minHeadcount)
	}
	if len(dayRoster.Delivery) < j.minHeadcount {
		j.logger.WarnContext(ctx, "Delivery duty understaffed for next service day",
			"date", tomorrow.String(),
			"assigned", len(dayRoster.Delivery),
			"required", j.minHeadcount)
	}
}

// Stop stops the staffing check job.
func (j *StaffingCheckJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Staffing check job stopped")
}
