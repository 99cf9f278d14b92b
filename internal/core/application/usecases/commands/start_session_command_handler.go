package commands

import (
	"context"

	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/ports"
)

// StartSessionCommandHandler creates and stores a new session.
type StartSessionCommandHandler struct {
	sessions ports.SessionRepository
}

func NewStartSessionCommandHandler(sessions ports.SessionRepository) StartSessionCommandHandler {
	return StartSessionCommandHandler{sessions: sessions}
}

func (h *StartSessionCommandHandler) Handle(ctx context.Context, cmd StartSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := session.NewSession(cmd.SessionID(), cmd.StartedAt())
	if err != nil {
		return err
	}

	if cmd.Location().IsKnown() {
		if err = s.SelectLocation(cmd.Location()); err != nil {
			return err
		}
	}

	return h.sessions.Add(ctx, s)
}
