package commands

import (
	"errors"
	"fmt"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

var ErrResolveCheckoutConflictCommandIsNotConstructed = errors.New(
	"ResolveCheckoutConflictCommand must be created via NewResolveCheckoutConflictCommand constructor",
)

// ResolveCheckoutConflictCommand answers a checkout conflict with switch, clear or reprice.
type ResolveCheckoutConflictCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	choice    cart.CheckoutConflictChoice

	guard guard.ConstructorGuard
}

func NewResolveCheckoutConflictCommand(
	sessionID kernel.UUID,
	choice cart.CheckoutConflictChoice,
) (ResolveCheckoutConflictCommand, error) {
	cmd := ResolveCheckoutConflictCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setChoice(choice),
	); err != nil {
		return ResolveCheckoutConflictCommand{}, err
	}
	return cmd, nil
}

func (c ResolveCheckoutConflictCommand) Validate() error {
	return c.guard.Validate(ErrResolveCheckoutConflictCommandIsNotConstructed)
}

func (c ResolveCheckoutConflictCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c ResolveCheckoutConflictCommand) Choice() cart.CheckoutConflictChoice {
	return c.choice
}

func (c *ResolveCheckoutConflictCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *ResolveCheckoutConflictCommand) setChoice(choice cart.CheckoutConflictChoice) error {
	switch choice {
	case cart.SwitchLocation, cart.ClearCart, cart.RepriceCart:
		c.choice = choice
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("choice", fmt.Errorf("%d is not a checkout conflict choice", choice))
	}
}
