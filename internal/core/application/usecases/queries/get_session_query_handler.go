package queries

import (
	"context"

	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/ports"
)

type GetSessionQueryHandler struct {
	sessions ports.SessionRepository
}

func NewGetSessionQueryHandler(sessions ports.SessionRepository) GetSessionQueryHandler {
	return GetSessionQueryHandler{sessions: sessions}
}

func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	s, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	resp := GetSessionQueryResponse{
		ID:               s.ID(),
		Location:         s.Location(),
		PinnedLocation:   s.Cart().PinnedLocation(),
		Phase:            s.Phase(),
		Items:            s.Cart().Items(),
		Total:            s.Cart().Total(),
		AddConflict:      s.PendingAddConflict(),
		CheckoutConflict: s.CheckoutConflict(),
		Offer:            s.Offer(),
		Form:             s.Form(),
		LastOrderID:      s.LastOrderID(),
	}
	if s.Phase() == session.CollectingInfo {
		resp.MissingFields = s.MissingFields()
	}
	return resp, nil
}
