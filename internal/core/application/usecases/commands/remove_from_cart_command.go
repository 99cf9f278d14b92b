package commands

import (
	"errors"

	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

var ErrRemoveFromCartCommandIsNotConstructed = errors.New(
	"RemoveFromCartCommand must be created via NewRemoveFromCartCommand constructor",
)

// RemoveFromCartCommand deletes one line from the cart.
type RemoveFromCartCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	productID catalog.ProductID

	guard guard.ConstructorGuard
}

func NewRemoveFromCartCommand(sessionID kernel.UUID, productID catalog.ProductID) (RemoveFromCartCommand, error) {
	cmd := RemoveFromCartCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveFromCartCommand{}, err
	}
	return cmd, nil
}

func (c RemoveFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromCartCommandIsNotConstructed)
}

func (c RemoveFromCartCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c RemoveFromCartCommand) ProductID() catalog.ProductID {
	return c.productID
}

func (c *RemoveFromCartCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *RemoveFromCartCommand) setProductID(id catalog.ProductID) error {
	if id == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	c.productID = id
	return nil
}
