// Package jobs provides scheduled background tasks for the fulfillment
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaffingCheckJob - Runs hourly to verify the next service day's roster
// exists and meets the minimum headcount per duty, logging a warning when
// order transitions would be blocked by a staffing gap.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getDayRosterHandler, minHeadcount, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
