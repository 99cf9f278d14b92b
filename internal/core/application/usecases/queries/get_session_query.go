package queries

import (
	"errors"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/model/upsell"
	"taproom/internal/pkg/guard"
)

var (
	ErrGetSessionQueryIsNotConstructed = errors.New(
		"GetSessionQuery must be created via NewGetSessionQuery constructor",
	)
)

// GetSessionQuery reads everything a client needs to render one session.
type GetSessionQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionQuery{}, err
	}
	return GetSessionQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

func (q GetSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetSessionQueryResponse is a read-only view of a session.
// AddConflict, CheckoutConflict and Offer are nil unless pending; MissingFields
// is only filled while the checkout form is open.
type GetSessionQueryResponse struct {
	ID             kernel.UUID
	Location       kernel.Location
	PinnedLocation kernel.Location
	Phase          session.Phase

	Items []cart.LineItem
	Total kernel.Money

	AddConflict      *cart.AddConflict
	CheckoutConflict *cart.CheckoutConflict
	Offer            upsell.Offer

	Form          checkout.Form
	MissingFields []checkout.Field
	LastOrderID   kernel.UUID
}
