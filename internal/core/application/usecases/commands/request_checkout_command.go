package commands

import (
	"errors"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/guard"
)

var ErrRequestCheckoutCommandIsNotConstructed = errors.New(
	"RequestCheckoutCommand must be created via NewRequestCheckoutCommand constructor",
)

// RequestCheckoutCommand starts checkout for a session.
type RequestCheckoutCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRequestCheckoutCommand(sessionID kernel.UUID) (RequestCheckoutCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return RequestCheckoutCommand{}, err
	}
	return RequestCheckoutCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (c RequestCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrRequestCheckoutCommandIsNotConstructed)
}

func (c RequestCheckoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}
