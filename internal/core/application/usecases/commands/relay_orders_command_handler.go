package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"taproom/internal/core/ports"
)

// ErrOrderPublishFailed wraps the publisher error that stopped a relay batch.
// The handler has already logged it.
var ErrOrderPublishFailed = errors.New("order publish failed")

// RelayOrdersCommandHandler drains the order journal into the order event stream.
// Publishing happens inside the journal transaction: an order whose publish
// succeeded but whose commit failed is published again on the next run, so
// consumers must treat order ids as idempotency keys.
type RelayOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewRelayOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) RelayOrdersCommandHandler {
	return RelayOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "order_relay"),
	}
}

// Handle returns the number of orders published and marked dispatched.
// The first failing publish stops the batch; orders before it stay dispatched.
func (h *RelayOrdersCommandHandler) Handle(ctx context.Context, cmd RelayOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	orders, err := ordersRepo.GetAllSubmitted(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	relayed := 0
	var publishErr error
	for _, o := range orders {
		if publishErr = h.publisher.PublishOrderSubmitted(ctx, o); publishErr != nil {
			h.logger.WarnContext(ctx, "order publish failed",
				"order_id", o.ID().String(),
				"relayed", relayed,
				"batch", len(orders),
				"error", publishErr,
			)
			break
		}

		if err = o.Dispatch(); err != nil {
			return 0, err
		}

		if err = ordersRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		relayed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if publishErr != nil {
		return relayed, fmt.Errorf("%w: %w", ErrOrderPublishFailed, publishErr)
	}
	return relayed, nil
}
