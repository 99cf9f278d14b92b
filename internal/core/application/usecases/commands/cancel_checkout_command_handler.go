package commands

import (
	"context"

	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/ports"
)

// CancelCheckoutCommandHandler returns the session to Browsing without touching
// the cart or the typed form data.
type CancelCheckoutCommandHandler struct {
	sessions ports.SessionRepository
}

func NewCancelCheckoutCommandHandler(sessions ports.SessionRepository) CancelCheckoutCommandHandler {
	return CancelCheckoutCommandHandler{sessions: sessions}
}

func (h *CancelCheckoutCommandHandler) Handle(ctx context.Context, cmd CancelCheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Modify(ctx, cmd.SessionID(), func(s *session.Session) error {
		return s.Cancel()
	})
}
