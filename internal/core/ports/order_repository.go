package ports

import (
	"context"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/order"
)

// OrderRepository is the order journal: every submitted order is written once
// and later marked dispatched by the relay.
type OrderRepository interface {
	// Add persists a new order with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllSubmitted returns up to limit orders still in Submitted status,
	// oldest first.
	GetAllSubmitted(ctx context.Context, limit int) ([]*order.Order, error)
}
