package commands

import (
	"errors"
	"time"

	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand submits the checkout form of a session as a new order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewSubmitOrderCommand(sessionID, orderID, form, time.Now())
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if len(result.Missing) > 0 {
//	    // keep the submit button disabled
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID   kernel.UUID
	orderID     kernel.UUID
	form        checkout.Form
	submittedAt time.Time

	guard guard.ConstructorGuard
}

func NewSubmitOrderCommand(
	sessionID kernel.UUID,
	orderID kernel.UUID,
	form checkout.Form,
	submittedAt time.Time,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{form: form, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setOrderID(orderID),
		cmd.setSubmittedAt(submittedAt),
	); err != nil {
		return SubmitOrderCommand{}, err
	}
	return cmd, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SubmitOrderCommand) Form() checkout.Form {
	return c.form
}

func (c SubmitOrderCommand) SubmittedAt() time.Time {
	return c.submittedAt
}

func (c *SubmitOrderCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *SubmitOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *SubmitOrderCommand) setSubmittedAt(submittedAt time.Time) error {
	if submittedAt.IsZero() {
		return errs.NewValueIsRequiredError("submittedAt")
	}
	c.submittedAt = submittedAt
	return nil
}
