// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
//  1. OutboxPublishJob - ships committed order status events to Kafka
//     (default every five seconds, six-field cron with seconds).
//  2. CounterRefreshJob - recomputes the pharmacy panel badge counters
//     from the panel registry ("@every 30s").
//
// # Usage
//
//	manager := jobs.NewJobManager(logger, outboxJob)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// Jobs log failures and keep their schedule; a failed outbox pass is
// retried whole by the next one. A job that fails to start stops the ones
// started before it.
package jobs
