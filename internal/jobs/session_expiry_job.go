package jobs

import (
	"context"
	"log/slog"
	"time"

	"taproom/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSessionExpirySchedule runs the expiry sweep at the top of every minute.
const DefaultSessionExpirySchedule = "0 * * * * *"

// SessionExpiryJob drops checkout sessions that have been idle for longer than ttl.
type SessionExpiryJob struct {
	handler  commands.ExpireSessionsCommandHandler
	schedule string
	ttl      time.Duration
	clock    func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionExpiryJob creates the job. An empty schedule means DefaultSessionExpirySchedule.
func NewSessionExpiryJob(
	handler commands.ExpireSessionsCommandHandler,
	schedule string,
	ttl time.Duration,
	logger *slog.Logger,
) *SessionExpiryJob {
	if schedule == "" {
		schedule = DefaultSessionExpirySchedule
	}
	return &SessionExpiryJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		clock:    time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_expiry_job"),
	}
}

func (j *SessionExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session expiry job started",
		"schedule", j.schedule, "ttl", j.ttl.String())
	return nil
}

func (j *SessionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session expiry job stopped")
}

func (j *SessionExpiryJob) run(ctx context.Context) int {
	cmd, err := commands.NewExpireSessionsCommand(j.clock(), j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session expiry job misconfigured", "error", err)
		return 0
	}

	dropped, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Session expiry job failed", "error", err)
		return 0
	}
	if dropped > 0 {
		j.logger.InfoContext(ctx, "Idle sessions dropped", "count", dropped)
	}
	return dropped
}
