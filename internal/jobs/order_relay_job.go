package jobs

import (
	"context"
	"errors"
	"log/slog"

	"taproom/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOrderRelaySchedule drains the order journal every five seconds.
const DefaultOrderRelaySchedule = "*/5 * * * * *"

// OrderRelayJob publishes journaled orders to the order event stream.
// Runs are never overlapped: a run still in progress makes the next one skip.
type OrderRelayJob struct {
	handler   commands.RelayOrdersCommandHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderRelayJob creates the job. An empty schedule means DefaultOrderRelaySchedule.
func NewOrderRelayJob(
	handler commands.RelayOrdersCommandHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *OrderRelayJob {
	if schedule == "" {
		schedule = DefaultOrderRelaySchedule
	}
	return &OrderRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "order_relay_job"),
	}
}

func (j *OrderRelayJob) Start() error {
	// fail fast on a bad batch size instead of logging it every run
	if _, err := commands.NewRelayOrdersCommand(j.batchSize); err != nil {
		return err
	}
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order relay job started",
		"schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

func (j *OrderRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order relay job stopped")
}

func (j *OrderRelayJob) run(ctx context.Context) int {
	cmd, err := commands.NewRelayOrdersCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order relay job misconfigured", "error", err)
		return 0
	}

	relayed, err := j.handler.Handle(ctx, cmd)
	if err != nil && !errors.Is(err, commands.ErrOrderPublishFailed) {
		j.logger.ErrorContext(ctx, "Order relay job failed", "relayed", relayed, "error", err)
		return relayed
	}
	if relayed > 0 {
		j.logger.InfoContext(ctx, "Orders relayed", "count", relayed)
	}
	return relayed
}
