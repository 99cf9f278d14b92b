package ports

import (
	"context"

	"taproom/internal/core/domain/model/order"
)

// HandoffReceipt describes where a submitted order was handed to the operator.
type HandoffReceipt struct {
	// Channel is the operator contact the order goes to, e.g. a WhatsApp number.
	Channel string

	// Message is the operator-facing text rendered from the order.
	Message string

	// Link opens the channel with Message prefilled.
	Link string
}

// OrderHandoff takes a submitted order to the human operator of its store.
// The engine does not wait for, retry or confirm the delivery of the message.
type OrderHandoff interface {
	Handoff(ctx context.Context, o *order.Order) (HandoffReceipt, error)
}

// OrderEventPublisher announces journaled orders to downstream consumers.
type OrderEventPublisher interface {
	PublishOrderSubmitted(ctx context.Context, o *order.Order) error
}
