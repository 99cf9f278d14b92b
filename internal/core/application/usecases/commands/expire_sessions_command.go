package commands

import (
	"errors"
	"time"

	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

// ExpireSessionsCommand drops sessions that had no activity for longer than ttl.
// A dropped session takes its cart, pending conflicts and form with it.
//
// Example:
//
//	cmd, err := NewExpireSessionsCommand(time.Now(), 2*time.Hour)
//	if err != nil {
//	    return err
//	}
//	dropped, err := handler.Handle(ctx, cmd)
type ExpireSessionsCommand struct { //nolint:recvcheck //using for validation
	now time.Time
	ttl time.Duration

	guard guard.ConstructorGuard
}

var (
	ErrExpireSessionsCommandIsNotConstructed = errors.New(
		"ExpireSessionsCommand must be created via NewExpireSessionsCommand constructor",
	)
)

func NewExpireSessionsCommand(now time.Time, ttl time.Duration) (ExpireSessionsCommand, error) {
	cmd := ExpireSessionsCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(cmd.setNow(now), cmd.setTTL(ttl)); err != nil {
		return ExpireSessionsCommand{}, err
	}
	return cmd, nil
}

func (c ExpireSessionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireSessionsCommandIsNotConstructed)
}

func (c ExpireSessionsCommand) Now() time.Time {
	return c.now
}

func (c ExpireSessionsCommand) TTL() time.Duration {
	return c.ttl
}

func (c *ExpireSessionsCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	c.now = now
	return nil
}

func (c *ExpireSessionsCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "max")
	}
	c.ttl = ttl
	return nil
}
