package commands

import (
	"errors"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/guard"
)

var ErrCancelCheckoutCommandIsNotConstructed = errors.New(
	"CancelCheckoutCommand must be created via NewCancelCheckoutCommand constructor",
)

// CancelCheckoutCommand closes the open checkout conflict, upsell offer or form.
type CancelCheckoutCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelCheckoutCommand(sessionID kernel.UUID) (CancelCheckoutCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return CancelCheckoutCommand{}, err
	}
	return CancelCheckoutCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCancelCheckoutCommandIsNotConstructed)
}

func (c CancelCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}
