package queries

import (
	"errors"
	"time"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

const DefaultPendingOrdersLimit = 100

var (
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
)

// GetPendingOrdersQuery lists journaled orders the relay has not published yet,
// oldest first. It lets operators see a stalled relay.
//
// Example:
//
//	query, _ := NewGetPendingOrdersQuery(50)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s R$ %s\n", o.ID, o.Location, o.Total)
//	}
type GetPendingOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery accepts a limit in [1, 1000]; 0 means DefaultPendingOrdersLimit.
func NewGetPendingOrdersQuery(limit int) (GetPendingOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultPendingOrdersLimit
	}
	if limit < 1 || limit > 1000 {
		return GetPendingOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, 1000)
	}
	return GetPendingOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

func (q GetPendingOrdersQuery) Limit() int {
	return q.limit
}

// GetPendingOrdersQueryResponse is one journal row awaiting publication.
type GetPendingOrdersQueryResponse struct {
	ID           kernel.UUID
	Location     kernel.Location
	CustomerName string
	Total        kernel.Money
	CreatedAt    time.Time
}
