package commands

import (
	"errors"
	"fmt"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

var ErrResolveAddConflictCommandIsNotConstructed = errors.New(
	"ResolveAddConflictCommand must be created via NewResolveAddConflictCommand constructor",
)

// ResolveAddConflictCommand answers the pending add conflict with replace or cancel.
type ResolveAddConflictCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	choice    cart.AddConflictChoice

	guard guard.ConstructorGuard
}

func NewResolveAddConflictCommand(sessionID kernel.UUID, choice cart.AddConflictChoice) (ResolveAddConflictCommand, error) {
	cmd := ResolveAddConflictCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setChoice(choice),
	); err != nil {
		return ResolveAddConflictCommand{}, err
	}
	return cmd, nil
}

func (c ResolveAddConflictCommand) Validate() error {
	return c.guard.Validate(ErrResolveAddConflictCommandIsNotConstructed)
}

func (c ResolveAddConflictCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c ResolveAddConflictCommand) Choice() cart.AddConflictChoice {
	return c.choice
}

func (c *ResolveAddConflictCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *ResolveAddConflictCommand) setChoice(choice cart.AddConflictChoice) error {
	if choice != cart.DiscardAndReplace && choice != cart.CancelAdd {
		return errs.NewValueIsInvalidErrorWithCause("choice", fmt.Errorf("%d is not an add conflict choice", choice))
	}
	c.choice = choice
	return nil
}
