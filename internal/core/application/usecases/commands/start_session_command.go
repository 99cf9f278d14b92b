package commands

import (
	"errors"
	"time"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

var ErrStartSessionCommandIsNotConstructed = errors.New(
	"StartSessionCommand must be created via NewStartSessionCommand constructor",
)

// StartSessionCommand opens a new checkout session, optionally at a store.
//
// Example:
//
//	cmd, err := NewStartSessionCommand(kernel.NewUUID(), kernel.LocationUnknown, time.Now())
type StartSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	location  kernel.Location
	startedAt time.Time

	guard guard.ConstructorGuard
}

// NewStartSessionCommand validates the id and the (possibly unknown) location.
func NewStartSessionCommand(sessionID kernel.UUID, location kernel.Location, startedAt time.Time) (StartSessionCommand, error) {
	cmd := StartSessionCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLocation(location),
		cmd.setStartedAt(startedAt),
	); err != nil {
		return StartSessionCommand{}, err
	}
	return cmd, nil
}

func (c StartSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartSessionCommandIsNotConstructed)
}

func (c StartSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c StartSessionCommand) Location() kernel.Location {
	return c.location
}

func (c StartSessionCommand) StartedAt() time.Time {
	return c.startedAt
}

func (c *StartSessionCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *StartSessionCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *StartSessionCommand) setStartedAt(startedAt time.Time) error {
	if startedAt.IsZero() {
		return errs.NewValueIsRequiredError("startedAt")
	}
	c.startedAt = startedAt
	return nil
}
