package commands

import (
	"context"

	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/services"
	"taproom/internal/core/ports"
)

// SelectLocationCommandHandler switches the active store. A cart filled before
// any store was chosen is pinned to it and repriced; a pinned cart keeps its
// store until checkout.
type SelectLocationCommandHandler struct {
	sessions ports.SessionRepository
	guard    services.CartGuard
}

func NewSelectLocationCommandHandler(sessions ports.SessionRepository, guard services.CartGuard) SelectLocationCommandHandler {
	return SelectLocationCommandHandler{sessions: sessions, guard: guard}
}

func (h *SelectLocationCommandHandler) Handle(ctx context.Context, cmd SelectLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Modify(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := s.SelectLocation(cmd.Location()); err != nil {
			return err
		}
		h.guard.AdoptLocation(s.Cart(), cmd.Location())
		return nil
	})
}
