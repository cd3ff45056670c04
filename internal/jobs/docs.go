// Package jobs provides scheduled background tasks for the distribution system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CollectionRunJob - Runs each morning to build the day's collection
// worklist (pending and baki orders whose care ticket promised a visit
// that day) and log it per delivery staff for the care desk.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(worklistHandler, "0 6 * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next schedule; the job never
// stops itself on a query error.
package jobs
