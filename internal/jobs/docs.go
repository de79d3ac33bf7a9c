// Package jobs provides scheduled background tasks for the router order
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. TrackingBackfillJob - Runs every minute to activate tracking for orders
// that have none. Reorders create the order row first and rely on this sweep
// to create the tracking record, so the sweep is what closes the gap between
// the two steps.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(untrackedHandler, createTrackingHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failure to activate tracking for one order is logged and does not stop
// the sweep; the order is retried on the next run.
package jobs
