package commands

import (
	"context"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/services"
	"taproom/internal/core/ports"
)

// AddToCartCommandHandler runs an add through the cart guard.
//
// Example:
//
//	conflict, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if conflict != nil {
//	    // the session now holds the pending add; ask replace or cancel
//	}
type AddToCartCommandHandler struct {
	sessions ports.SessionRepository
	guard    services.CartGuard
}

func NewAddToCartCommandHandler(sessions ports.SessionRepository, guard services.CartGuard) AddToCartCommandHandler {
	return AddToCartCommandHandler{sessions: sessions, guard: guard}
}

// Handle returns the location conflict when the cart is pinned to another
// store. The conflict is kept on the session for ResolveAddConflictCommand;
// an accepted add drops an older one.
func (h *AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) (*cart.AddConflict, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var conflict *cart.AddConflict
	err := h.sessions.Modify(ctx, cmd.SessionID(), func(s *session.Session) error {
		if err := s.RequireBrowsing(); err != nil {
			return err
		}

		c, err := h.guard.RequestAdd(s.Cart(), cmd.ProductID(), cmd.Extras(), false, s.Location())
		if err != nil {
			return err
		}
		if c != nil {
			s.HoldAddConflict(c)
		} else {
			s.DiscardAddConflict()
		}
		conflict = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conflict, nil
}
