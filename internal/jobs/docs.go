// Package jobs provides scheduled background tasks for the tailoring service.
//
// Jobs are cron based (github.com/robfig/cron/v3, with a seconds field).
//
// # Available Jobs
//
// DeliveryReminderJob runs once a day (default "0 0 8 * * *") and sends the
// delivery-day reminder for orders that are due today but still cutting,
// sewing, finishing or in quality check.
//
// # Usage
//
//	jobManager := jobs.NewJobManager().
//		Add("delivery reminder", jobs.NewDeliveryReminderJob(handler, schedule, loc, logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed batch is logged and retried at the next tick. Failed job starts
// stop any already running jobs.
package jobs
