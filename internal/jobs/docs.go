// Package jobs provides scheduled background tasks for the resume delivery
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ResumeDispatchJob - Runs at second zero of every minute to deliver the
// resumes of users whose enabled automation is scheduled for that minute.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses the cron expression "0 * * * * *" (with seconds
// enabled): one tick per minute, aligned to second zero. Minute alignment
// matters because due users are matched by exact minute equality; a cycle
// reads the clock once at its start so a slow batch cannot drift into a
// different minute.
//
// # Error Handling
//
// Per-user delivery failures are contained inside the dispatch cycle and
// reported in its summary. The job itself only fails when the due-user query
// fails, and logs that as an error.
package jobs
