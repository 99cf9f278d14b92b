package services

import (
	"fmt"
	"time"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/order"
	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/model/upsell"
	"taproom/internal/pkg/errs"
)

var (
	ErrCartIsEmpty        = errs.NewValueIsRequiredError("cart items")
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
)

// CheckoutFlow drives a session from the checkout request to the submitted order.
//
// The steps run in a fixed order and each is skipped when it has nothing to do:
//
//	request ──> checkout conflict? ──> upsell offer? ──> form ──> submit
//
// Conflicts, offers and missing fields are returned as session state or values;
// errors are reserved for calls made in the wrong phase or with invalid input.
type CheckoutFlow struct {
	guard       CartGuard
	recommender UpsellRecommender
	assembler   OrderAssembler
}

func NewCheckoutFlow(guard CartGuard, recommender UpsellRecommender, assembler OrderAssembler) CheckoutFlow {
	return CheckoutFlow{guard: guard, recommender: recommender, assembler: assembler}
}

// RequestCheckout starts checkout from Browsing. It leaves the session in
// ResolvingCheckoutConflict, ReviewingUpsell or CollectingInfo.
func (f CheckoutFlow) RequestCheckout(s *session.Session) error {
	if err := s.RequireBrowsing(); err != nil {
		return err
	}
	if s.Cart().IsEmpty() {
		return ErrCartIsEmpty
	}
	if !s.Location().IsKnown() {
		return ErrLocationIsRequired
	}

	if conflict := f.guard.CheckCheckout(s.Cart(), s.Location()); conflict != nil {
		return s.OpenCheckoutConflict(conflict)
	}
	return f.offerOrForm(s)
}

// ResolveCheckoutConflict applies switch, clear or reprice and moves on to the
// upsell step. Clearing the cart ends checkout and returns to Browsing.
func (f CheckoutFlow) ResolveCheckoutConflict(s *session.Session, choice cart.CheckoutConflictChoice) error {
	conflict, err := s.TakeCheckoutConflict()
	if err != nil {
		return err
	}

	location, err := f.guard.ResolveCheckoutConflict(s.Cart(), conflict, choice)
	if err != nil {
		return err
	}
	if err = s.AdoptLocation(location); err != nil {
		return err
	}

	if s.Cart().IsEmpty() {
		return s.Cancel()
	}
	return f.offerOrForm(s)
}

// ResolveUpsell applies the selection (or decline) and opens the form.
func (f CheckoutFlow) ResolveUpsell(s *session.Session, selection upsell.Selection) error {
	offer, err := s.TakeOffer()
	if err != nil {
		return err
	}
	if err = f.recommender.Accept(s.Cart(), offer, selection, f.guard, s.Location()); err != nil {
		return err
	}
	return s.OpenForm()
}

// UpdateForm stores the form and returns the fields still missing.
func (f CheckoutFlow) UpdateForm(s *session.Session, form checkout.Form) ([]checkout.Field, error) {
	if err := s.UpdateForm(form); err != nil {
		return nil, err
	}
	return s.MissingFields(), nil
}

// Submit stores form and, when nothing is missing, assembles the order and
// marks the session Submitted.
//
// Returns:
//   - the order and nil missing fields on success
//   - nil and the missing fields when the form is incomplete; the session stays in CollectingInfo
//   - an error when the session is not collecting info or the order cannot be built
func (f CheckoutFlow) Submit(
	s *session.Session,
	form checkout.Form,
	orderID kernel.UUID,
	now time.Time,
) (*order.Order, []checkout.Field, error) {
	missing, err := f.UpdateForm(s, form)
	if err != nil {
		return nil, nil, err
	}
	if len(missing) > 0 {
		return nil, missing, nil
	}

	location := s.Cart().PinnedLocation()
	if !location.IsKnown() {
		location = s.Location()
	}

	o, err := f.assembler.Assemble(orderID, location, s.Cart(), s.Form(), now)
	if err != nil {
		return nil, nil, fmt.Errorf("assemble order: %w", err)
	}
	if err = s.MarkSubmitted(o.ID()); err != nil {
		return nil, nil, err
	}
	return o, nil, nil
}

func (f CheckoutFlow) offerOrForm(s *session.Session) error {
	if offer := f.recommender.Recommend(s.Cart(), s.Location()); offer != nil {
		return s.PresentOffer(offer)
	}
	return s.OpenForm()
}
