package whatsapp

import (
	"context"
	"errors"
	"fmt"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/order"
	"taproom/internal/core/ports"
	"taproom/internal/pkg/errs"
)

var ErrHandoffIsNotConstructed = errors.New("Handoff must be created via NewHandoff constructor")

// Handoff journals a submitted order and renders the WhatsApp message for the
// operator of the order's store.
type Handoff struct {
	uowFactory ports.UnitOfWorkFactory
	numbers    map[kernel.Location]string
}

var _ ports.OrderHandoff = (*Handoff)(nil)

// NewHandoff builds a Handoff. numbers maps every known location to its operator number.
func NewHandoff(uowFactory ports.UnitOfWorkFactory, numbers map[kernel.Location]string) (*Handoff, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	for _, loc := range kernel.Locations() {
		if numbers[loc] == "" {
			return nil, errs.NewValueIsRequiredError(fmt.Sprintf("whatsapp number for %s", loc.Code()))
		}
	}

	copied := make(map[kernel.Location]string, len(numbers))
	for loc, n := range numbers {
		copied[loc] = n
	}
	return &Handoff{uowFactory: uowFactory, numbers: copied}, nil
}

func (h *Handoff) Handoff(ctx context.Context, o *order.Order) (ports.HandoffReceipt, error) {
	if h == nil || h.uowFactory == nil {
		return ports.HandoffReceipt{}, ErrHandoffIsNotConstructed
	}
	if o == nil {
		return ports.HandoffReceipt{}, errs.NewValueIsRequiredError("order")
	}

	number, ok := h.numbers[o.Location()]
	if !ok {
		return ports.HandoffReceipt{}, errs.NewValueIsInvalidErrorWithCause("location",
			fmt.Errorf("no whatsapp number for %q", o.Location().Code()))
	}

	if err := h.journal(ctx, o); err != nil {
		return ports.HandoffReceipt{}, err
	}

	message := RenderMessage(o)
	return ports.HandoffReceipt{
		Channel: number,
		Message: message,
		Link:    Link(number, message),
	}, nil
}

func (h *Handoff) journal(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
