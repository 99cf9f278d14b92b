package commands

import (
	"errors"

	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

const (
	MinRelayBatchSize = 1
	MaxRelayBatchSize = 500
)

// RelayOrdersCommand publishes up to BatchSize journaled orders that are still
// in Submitted status and marks them dispatched.
//
// Example:
//
//	cmd, err := NewRelayOrdersCommand(50)
//	if err != nil {
//	    return err
//	}
//	relayed, err := handler.Handle(ctx, cmd)
type RelayOrdersCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

var (
	ErrRelayOrdersCommandIsNotConstructed = errors.New(
		"RelayOrdersCommand must be created via NewRelayOrdersCommand constructor",
	)
)

func NewRelayOrdersCommand(batchSize int) (RelayOrdersCommand, error) {
	cmd := RelayOrdersCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return RelayOrdersCommand{}, err
	}
	return cmd, nil
}

func (c RelayOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRelayOrdersCommandIsNotConstructed)
}

func (c RelayOrdersCommand) BatchSize() int {
	return c.batchSize
}

func (c *RelayOrdersCommand) setBatchSize(batchSize int) error {
	if batchSize < MinRelayBatchSize || batchSize > MaxRelayBatchSize {
		return errs.NewValueIsOutOfRangeError("batchSize", batchSize, MinRelayBatchSize, MaxRelayBatchSize)
	}
	c.batchSize = batchSize
	return nil
}
