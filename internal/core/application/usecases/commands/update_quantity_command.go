package commands

import (
	"errors"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

var ErrUpdateQuantityCommandIsNotConstructed = errors.New(
	"UpdateQuantityCommand must be created via NewUpdateQuantityCommand constructor",
)

// UpdateQuantityCommand changes the quantity of a line by delta (e.g. +1 / -1).
// The result is clamped to at least one.
type UpdateQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	productID catalog.ProductID
	delta     int

	guard guard.ConstructorGuard
}

func NewUpdateQuantityCommand(sessionID kernel.UUID, productID catalog.ProductID, delta int) (UpdateQuantityCommand, error) {
	cmd := UpdateQuantityCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
		cmd.setDelta(delta),
	); err != nil {
		return UpdateQuantityCommand{}, err
	}
	return cmd, nil
}

func (c UpdateQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateQuantityCommandIsNotConstructed)
}

func (c UpdateQuantityCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c UpdateQuantityCommand) ProductID() catalog.ProductID {
	return c.productID
}

func (c UpdateQuantityCommand) Delta() int {
	return c.delta
}

func (c *UpdateQuantityCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *UpdateQuantityCommand) setProductID(id catalog.ProductID) error {
	if id == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	c.productID = id
	return nil
}

func (c *UpdateQuantityCommand) setDelta(delta int) error {
	if delta == 0 {
		return errs.NewValueIsInvalidError("delta")
	}
	if delta < -cart.MaxQuantityDelta || delta > cart.MaxQuantityDelta {
		return errs.NewValueIsOutOfRangeError("delta", delta, -cart.MaxQuantityDelta, cart.MaxQuantityDelta)
	}
	c.delta = delta
	return nil
}
