package commands

import (
	"context"

	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/services"
	"taproom/internal/core/ports"
)

// UpdateCheckoutFormCommandHandler stores the form and returns the live list of
// missing required fields. Toggling the deferred-event or ship-to-different
// address switches changes that list on the next call.
type UpdateCheckoutFormCommandHandler struct {
	sessions ports.SessionRepository
	flow     services.CheckoutFlow
}

func NewUpdateCheckoutFormCommandHandler(
	sessions ports.SessionRepository,
	flow services.CheckoutFlow,
) UpdateCheckoutFormCommandHandler {
	return UpdateCheckoutFormCommandHandler{sessions: sessions, flow: flow}
}

func (h *UpdateCheckoutFormCommandHandler) Handle(ctx context.Context, cmd UpdateCheckoutFormCommand) ([]checkout.Field, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var missing []checkout.Field
	err := h.sessions.Modify(ctx, cmd.SessionID(), func(s *session.Session) error {
		var err error
		missing, err = h.flow.UpdateForm(s, cmd.Form())
		return err
	})
	if err != nil {
		return nil, err
	}
	return missing, nil
}
