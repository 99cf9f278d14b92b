package commands

import (
	"errors"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/guard"
)

var ErrDismissConfirmationCommandIsNotConstructed = errors.New(
	"DismissConfirmationCommand must be created via NewDismissConfirmationCommand constructor",
)

// DismissConfirmationCommand closes the order confirmation.
type DismissConfirmationCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDismissConfirmationCommand(sessionID kernel.UUID) (DismissConfirmationCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return DismissConfirmationCommand{}, err
	}
	return DismissConfirmationCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (c DismissConfirmationCommand) Validate() error {
	return c.guard.Validate(ErrDismissConfirmationCommandIsNotConstructed)
}

func (c DismissConfirmationCommand) SessionID() kernel.UUID {
	return c.sessionID
}
