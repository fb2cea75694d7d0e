// Package jobs provides scheduled background tasks for the manufacturing
// backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the production order lifecycle.
//
// # Available Jobs
//
// 1. DeliveryBacklogJob - Runs every minute to report how many finished
// orders are waiting to be delivered
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getAllOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The backlog job is observational only; failures are logged and the next
// tick runs as scheduled.
package jobs
