package commands

import (
	"errors"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand adds one unit of a product, with optional keg extras.
//
// Example:
//
//	rent := true
//	cmd, err := NewAddToCartCommand(sessionID, catalog.KegPilsen30, cart.ExtrasPatch{RentTonel: &rent})
type AddToCartCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	productID catalog.ProductID
	extras    cart.ExtrasPatch

	guard guard.ConstructorGuard
}

func NewAddToCartCommand(sessionID kernel.UUID, productID catalog.ProductID, extras cart.ExtrasPatch) (AddToCartCommand, error) {
	cmd := AddToCartCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
		cmd.setExtras(extras),
	); err != nil {
		return AddToCartCommand{}, err
	}
	return cmd, nil
}

func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

func (c AddToCartCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c AddToCartCommand) ProductID() catalog.ProductID {
	return c.productID
}

func (c AddToCartCommand) Extras() cart.ExtrasPatch {
	return c.extras
}

func (c *AddToCartCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *AddToCartCommand) setProductID(id catalog.ProductID) error {
	if id == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	c.productID = id
	return nil
}

func (c *AddToCartCommand) setExtras(extras cart.ExtrasPatch) error {
	if err := extras.Validate(); err != nil {
		return err
	}
	c.extras = extras
	return nil
}
