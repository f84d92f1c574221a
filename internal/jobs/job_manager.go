package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staffingCheckJob *StaffingCheckJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getDayRosterHandler queries.GetDayRosterQueryHandler,
	minHeadcount int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staffingCheckJob: NewStaffingCheckJob(getDayRosterHandler, minHeadcount, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staffingCheckJob.Start(); err != nil {
		return fmt.Errorf("failed to start staffing check job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staffingCheckJob.Stop()
}
