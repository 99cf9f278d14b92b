package commands

import (
	"context"

	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/ports"
)

type UpdateQuantityCommandHandler struct {
	sessions ports.SessionRepository
}

func NewUpdateQuantityCommandHandler(sessions ports.SessionRepository) UpdateQuantityCommandHandler {
	return UpdateQuantityCommandHandler{sessions: sessions}
}

func (h *UpdateQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Modify(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := s.RequireBrowsing(); err != nil {
			return err
		}
		return s.Cart().UpdateQuantity(cmd.ProductID(), cmd.Delta())
	})
}
