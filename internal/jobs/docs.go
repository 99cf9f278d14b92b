// Package jobs provides scheduled background tasks for the order engine.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field schedules with seconds).
//
// # Available Jobs
//
// 1. SessionExpiryJob - drops checkout sessions idle for longer than the configured TTL (default: every minute)
// 2. OrderRelayJob - publishes journaled orders to the order event stream and marks them dispatched (default: every 5 seconds)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireSessionsHandler, relayOrdersHandler, jobs.Schedules{
//		SessionTTL:     2 * time.Hour,
//		RelayBatchSize: 50,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and try again on the next tick
// - The relay job skips a tick while the previous run is still publishing
// - Failed job starts will stop any already running jobs
package jobs
