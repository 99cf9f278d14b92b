package commands

import (
	"context"

	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/services"
	"taproom/internal/core/ports"
)

// RequestCheckoutCommandHandler moves a Browsing session into checkout.
//
// The returned phase tells the caller what to show next:
//   - ResolvingCheckoutConflict: the cart is pinned to another store
//   - ReviewingUpsell: a keg or growler offer
//   - CollectingInfo: the form, nothing to suggest
//
// An empty cart or a session without a store is rejected with
// services.ErrCartIsEmpty or services.ErrLocationIsRequired.
type RequestCheckoutCommandHandler struct {
	sessions ports.SessionRepository
	flow     services.CheckoutFlow
}

func NewRequestCheckoutCommandHandler(sessions ports.SessionRepository, flow services.CheckoutFlow) RequestCheckoutCommandHandler {
	return RequestCheckoutCommandHandler{sessions: sessions, flow: flow}
}

func (h *RequestCheckoutCommandHandler) Handle(ctx context.Context, cmd RequestCheckoutCommand) (session.Phase, error) {
	if err := cmd.Validate(); err != nil {
		return session.PhaseUnknown, err
	}

	var phase session.Phase
	err := h.sessions.Modify(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := h.flow.RequestCheckout(s); err != nil {
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
