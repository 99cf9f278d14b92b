package commands

import (
	"context"

	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/services"
	"taproom/internal/core/ports"
)

// ResolveCheckoutConflictCommandHandler applies the conflict choice and moves on
// to the upsell step or the form. Clearing the cart ends checkout.
type ResolveCheckoutConflictCommandHandler struct {
	sessions ports.SessionRepository
	flow     services.CheckoutFlow
}

func NewResolveCheckoutConflictCommandHandler(
	sessions ports.SessionRepository,
	flow services.CheckoutFlow,
) ResolveCheckoutConflictCommandHandler {
	return ResolveCheckoutConflictCommandHandler{sessions: sessions, flow: flow}
}

// Handle returns the phase the session moved to.
func (h *ResolveCheckoutConflictCommandHandler) Handle(
	ctx context.Context,
	cmd ResolveCheckoutConflictCommand,
) (session.Phase, error) {
	if err := cmd.Validate(); err != nil {
		return session.PhaseUnknown, err
	}

	var phase session.Phase
	err := h.sessions.Modify(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := h.flow.ResolveCheckoutConflict(s, cmd.Choice()); err != nil {
			return err
		}
		phase = s.Phase()
		return nil
	})
	if err != nil {
		return session.PhaseUnknown, err
	}
	return phase, nil
}
