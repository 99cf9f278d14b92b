package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"taproom/internal/core/application/usecases/commands"
)

// Schedules configures the background jobs. Empty schedules use the job defaults.
type Schedules struct {
	SessionExpiry  string
	SessionTTL     time.Duration
	OrderRelay     string
	RelayBatchSize int
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	sessionExpiryJob *SessionExpiryJob
	orderRelayJob    *OrderRelayJob
}

func NewJobManager(
	expireSessionsHandler commands.ExpireSessionsCommandHandler,
	relayOrdersHandler commands.RelayOrdersCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionExpiryJob: NewSessionExpiryJob(
			expireSessionsHandler, schedules.SessionExpiry, schedules.SessionTTL, logger),
		orderRelayJob: NewOrderRelayJob(
			relayOrdersHandler, schedules.OrderRelay, schedules.RelayBatchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start session expiry job: %w", err)
	}

	if err := jm.orderRelayJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.sessionExpiryJob.Stop()
		return fmt.Errorf("failed to start order relay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.orderRelayJob.Stop()
	jm.sessionExpiryJob.Stop()
}
