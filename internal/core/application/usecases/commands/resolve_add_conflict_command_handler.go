package commands

import (
	"context"

	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/services"
	"taproom/internal/core/ports"
)

// ResolveAddConflictCommandHandler applies discard-and-replace or cancel to
// the add conflict held by the session.
type ResolveAddConflictCommandHandler struct {
	sessions ports.SessionRepository
	guard    services.CartGuard
}

func NewResolveAddConflictCommandHandler(
	sessions ports.SessionRepository,
	guard services.CartGuard,
) ResolveAddConflictCommandHandler {
	return ResolveAddConflictCommandHandler{sessions: sessions, guard: guard}
}

func (h *ResolveAddConflictCommandHandler) Handle(ctx context.Context, cmd ResolveAddConflictCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Modify(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := s.RequireBrowsing(); err != nil {
			return err
		}

		conflict, err := s.TakeAddConflict()
		if err != nil {
			return err
		}
		return h.guard.ResolveAddConflict(s.Cart(), conflict, cmd.Choice())
	})
}
