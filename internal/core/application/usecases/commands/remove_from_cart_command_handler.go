package commands

import (
	"context"

	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/ports"
)

// RemoveFromCartCommandHandler removes a line. Removing the last line unpins the
// cart and drops a pending add conflict, since an empty cart cannot conflict.
type RemoveFromCartCommandHandler struct {
	sessions ports.SessionRepository
}

func NewRemoveFromCartCommandHandler(sessions ports.SessionRepository) RemoveFromCartCommandHandler {
	return RemoveFromCartCommandHandler{sessions: sessions}
}

func (h *RemoveFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveFromCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Modify(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := s.RequireBrowsing(); err != nil {
			return err
		}
		if err := s.Cart().Remove(cmd.ProductID()); err != nil {
			return err
		}
		if s.Cart().IsEmpty() {
			s.DiscardAddConflict()
		}
		return nil
	})
}
