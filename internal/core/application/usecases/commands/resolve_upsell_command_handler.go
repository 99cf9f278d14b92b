package commands

import (
	"context"

	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/services"
	"taproom/internal/core/ports"
)

// ResolveUpsellCommandHandler applies the selection (or nothing, on decline)
// and opens the checkout form.
type ResolveUpsellCommandHandler struct {
	sessions ports.SessionRepository
	flow     services.CheckoutFlow
}

func NewResolveUpsellCommandHandler(sessions ports.SessionRepository, flow services.CheckoutFlow) ResolveUpsellCommandHandler {
	return ResolveUpsellCommandHandler{sessions: sessions, flow: flow}
}

func (h *ResolveUpsellCommandHandler) Handle(ctx context.Context, cmd ResolveUpsellCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Modify(ctx, cmd.SessionID(), func(s *session.Session) error {
		return h.flow.ResolveUpsell(s, cmd.Selection())
	})
}
