package commands

import (
	"errors"

	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/guard"
)

var ErrUpdateCheckoutFormCommandIsNotConstructed = errors.New(
	"UpdateCheckoutFormCommand must be created via NewUpdateCheckoutFormCommand constructor",
)

// UpdateCheckoutFormCommand replaces the form data of a session in CollectingInfo.
// Blank fields are allowed; the handler reports which ones still block submission.
type UpdateCheckoutFormCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	form      checkout.Form

	guard guard.ConstructorGuard
}

func NewUpdateCheckoutFormCommand(sessionID kernel.UUID, form checkout.Form) (UpdateCheckoutFormCommand, error) {
	cmd := UpdateCheckoutFormCommand{form: form, guard: guard.NewConstructorGuard()}

	if err := cmd.setSessionID(sessionID); err != nil {
		return UpdateCheckoutFormCommand{}, err
	}
	return cmd, nil
}

func (c UpdateCheckoutFormCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCheckoutFormCommandIsNotConstructed)
}

func (c UpdateCheckoutFormCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c UpdateCheckoutFormCommand) Form() checkout.Form {
	return c.form
}

func (c *UpdateCheckoutFormCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}
