package commands

import (
	"context"

	"taproom/internal/core/ports"
)

type ExpireSessionsCommandHandler struct {
	sessions ports.SessionRepository
}

func NewExpireSessionsCommandHandler(sessions ports.SessionRepository) ExpireSessionsCommandHandler {
	return ExpireSessionsCommandHandler{sessions: sessions}
}

// Handle returns the number of dropped sessions.
func (h *ExpireSessionsCommandHandler) Handle(ctx context.Context, cmd ExpireSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.sessions.DeleteIdle(ctx, cmd.Now(), cmd.TTL())
}
