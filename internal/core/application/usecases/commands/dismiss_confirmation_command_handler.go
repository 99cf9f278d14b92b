package commands

import (
	"context"

	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/ports"
)

// DismissConfirmationCommandHandler closes the confirmation of a submitted
// order, which empties the cart and resets the form.
type DismissConfirmationCommandHandler struct {
	sessions ports.SessionRepository
}

func NewDismissConfirmationCommandHandler(sessions ports.SessionRepository) DismissConfirmationCommandHandler {
	return DismissConfirmationCommandHandler{sessions: sessions}
}

func (h *DismissConfirmationCommandHandler) Handle(ctx context.Context, cmd DismissConfirmationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Modify(ctx, cmd.SessionID(), func(s *session.Session) error {
		return s.Dismiss()
	})
}
