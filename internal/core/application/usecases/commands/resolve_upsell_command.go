package commands

import (
	"errors"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/upsell"
	"taproom/internal/pkg/guard"
)

var ErrResolveUpsellCommandIsNotConstructed = errors.New(
	"ResolveUpsellCommand must be created via NewResolveUpsellCommand constructor",
)

// ResolveUpsellCommand accepts part of the upsell offer or declines it.
//
// Example:
//
//	decline, _ := NewResolveUpsellCommand(sessionID, upsell.Selection{Decline: true})
//	accept, _ := NewResolveUpsellCommand(sessionID, upsell.Selection{
//	    Products: []catalog.ProductID{catalog.GrowlerRedWine},
//	})
type ResolveUpsellCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	selection upsell.Selection

	guard guard.ConstructorGuard
}

func NewResolveUpsellCommand(sessionID kernel.UUID, selection upsell.Selection) (ResolveUpsellCommand, error) {
	cmd := ResolveUpsellCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setSelection(selection),
	); err != nil {
		return ResolveUpsellCommand{}, err
	}
	return cmd, nil
}

func (c ResolveUpsellCommand) Validate() error {
	return c.guard.Validate(ErrResolveUpsellCommandIsNotConstructed)
}

func (c ResolveUpsellCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c ResolveUpsellCommand) Selection() upsell.Selection {
	return c.selection
}

func (c *ResolveUpsellCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *ResolveUpsellCommand) setSelection(selection upsell.Selection) error {
	if err := selection.Mugs.Validate(); err != nil {
		return err
	}
	c.selection = selection
	return nil
}
