// Package jobs provides scheduled background tasks.
//
// Jobs are cron based (github.com/robfig/cron/v3, seconds enabled) and are
// started and stopped together through JobManager:
//
//	relay := jobs.NewOutboxRelayJob(handler, cmd, "*/5 * * * * *", logger)
//	manager := jobs.NewJobManager(relay)
//	if err := manager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer manager.StopAll()
//
// # Available Jobs
//
// OutboxRelayJob publishes order events written to the outbox table to the
// message broker. It runs every five seconds by default. Publishing stops at
// the first failure and is retried on the next tick, so consumers must
// tolerate duplicates.
package jobs
