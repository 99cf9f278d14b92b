package commands

import (
	"errors"
	"fmt"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

var ErrSelectLocationCommandIsNotConstructed = errors.New(
	"SelectLocationCommand must be created via NewSelectLocationCommand constructor",
)

// SelectLocationCommand changes the store a session browses.
type SelectLocationCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	location  kernel.Location

	guard guard.ConstructorGuard
}

// NewSelectLocationCommand requires a session id and a known store.
func NewSelectLocationCommand(sessionID kernel.UUID, location kernel.Location) (SelectLocationCommand, error) {
	cmd := SelectLocationCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLocation(location),
	); err != nil {
		return SelectLocationCommand{}, err
	}
	return cmd, nil
}

func (c SelectLocationCommand) Validate() error {
	return c.guard.Validate(ErrSelectLocationCommandIsNotConstructed)
}

func (c SelectLocationCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c SelectLocationCommand) Location() kernel.Location {
	return c.location
}

func (c *SelectLocationCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *SelectLocationCommand) setLocation(location kernel.Location) error {
	if !location.IsKnown() {
		return errs.NewValueIsInvalidErrorWithCause("location", fmt.Errorf("%s is not a store", location))
	}
	c.location = location
	return nil
}
