package session

import (
	"errors"
	"fmt"
	"time"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/upsell"
	"taproom/internal/pkg/errs"
	"taproom/internal/pkg/guard"
)

var (
	ErrSessionIsNotConstructed   = errors.New("Session must be created via NewSession constructor")
	ErrNoPendingAddConflict      = errs.NewValueIsRequiredError("pending add conflict")
	ErrAddConflictIsStale        = errs.NewValueIsInvalidError("pending add conflict")
	ErrNoPendingCheckoutConflict = errs.NewValueIsRequiredError("pending checkout conflict")
	ErrNoPendingOffer            = errs.NewValueIsRequiredError("pending upsell offer")
)

// Session is one shopper's checkout session.
//
// Invariants:
//   - the cart is never nil
//   - a checkout conflict is held only in ResolvingCheckoutConflict
//   - an upsell offer is held only in ReviewingUpsell
//   - the cart can be edited and the store changed only while Browsing
//
// A pending add conflict is independent of the phase: it lives until the
// customer answers it or the cart changes in a way that makes it stale.
//
// Example:
//
//	s, err := session.NewSession(kernel.NewUUID(), time.Now())
//	if err != nil {
//	    return err
//	}
//	_ = s.SelectLocation(kernel.FozDoIguacu)
type Session struct {
	id       kernel.UUID
	location kernel.Location
	cart     *cart.Cart
	phase    Phase

	pendingAdd       *cart.AddConflict
	checkoutConflict *cart.CheckoutConflict
	offer            upsell.Offer
	form             checkout.Form

	lastOrderID kernel.UUID
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewSession starts a Browsing session with an empty cart and no store chosen.
func NewSession(id kernel.UUID, now time.Time) (*Session, error) {
	s := &Session{
		cart:      cart.NewCart(),
		phase:     Browsing,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := s.setID(id); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

// Location is the store the customer currently browses.
func (s *Session) Location() kernel.Location {
	return s.location
}

// Cart returns the live cart. Callers mutate it only through the cart guard.
func (s *Session) Cart() *cart.Cart {
	return s.cart
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) PendingAddConflict() *cart.AddConflict {
	return s.pendingAdd
}

func (s *Session) CheckoutConflict() *cart.CheckoutConflict {
	return s.checkoutConflict
}

func (s *Session) Offer() upsell.Offer {
	return s.offer
}

func (s *Session) Form() checkout.Form {
	return s.form
}

// LastOrderID is the id of the most recently submitted order, or the zero UUID.
func (s *Session) LastOrderID() kernel.UUID {
	return s.lastOrderID
}

func (s *Session) UpdatedAt() time.Time {
	return s.updatedAt
}

// CartProfile is the cart summary the form rules depend on.
func (s *Session) CartProfile() checkout.CartProfile {
	return checkout.CartProfile{HasKeg: s.cart.HasKeg()}
}

// MissingFields is the live list of form fields that still block submission.
func (s *Session) MissingFields() []checkout.Field {
	return checkout.MissingFields(s.form, s.CartProfile())
}

// Touch records activity at now.
func (s *Session) Touch(now time.Time) {
	if now.After(s.updatedAt) {
		s.updatedAt = now
	}
}

// IsIdle reports whether the session saw no activity for longer than ttl.
func (s *Session) IsIdle(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.updatedAt) > ttl
}

// Clone returns a deep copy used to apply an operation all-or-nothing.
func (s *Session) Clone() *Session {
	clone := *s
	clone.cart = s.cart.Clone()
	if s.pendingAdd != nil {
		pending := *s.pendingAdd
		clone.pendingAdd = &pending
	}
	if s.checkoutConflict != nil {
		conflict := *s.checkoutConflict
		clone.checkoutConflict = &conflict
	}
	return &clone
}

// RequireBrowsing fails with ErrPhaseTransitionIsInvalid outside of Browsing.
func (s *Session) RequireBrowsing() error {
	if s.phase != Browsing {
		return fmt.Errorf("%w: cart is locked while %s", ErrPhaseTransitionIsInvalid, s.phase)
	}
	return nil
}

// SelectLocation changes the active store. The cart is not touched here; a
// pending add conflict was raised at the previous store and is dropped.
func (s *Session) SelectLocation(location kernel.Location) error {
	if err := s.RequireBrowsing(); err != nil {
		return err
	}
	if err := requireKnown(location); err != nil {
		return err
	}
	if location != s.location {
		s.pendingAdd = nil
	}
	s.location = location
	return nil
}

// HoldAddConflict keeps a rejected add until the customer answers it. A newer
// conflict replaces an older one.
func (s *Session) HoldAddConflict(conflict *cart.AddConflict) {
	s.pendingAdd = conflict
}

// TakeAddConflict removes and returns the pending add conflict. A conflict
// that no longer matches the active store and the cart's pinned store is
// dropped and reported as ErrAddConflictIsStale.
func (s *Session) TakeAddConflict() (*cart.AddConflict, error) {
	if s.pendingAdd == nil {
		return nil, ErrNoPendingAddConflict
	}
	pending := s.pendingAdd
	s.pendingAdd = nil

	if pending.RequestedLocation != s.location || pending.CartLocation != s.cart.PinnedLocation() {
		return nil, ErrAddConflictIsStale
	}
	return pending, nil
}

// DiscardAddConflict forgets the pending add conflict, if any.
func (s *Session) DiscardAddConflict() {
	s.pendingAdd = nil
}

// OpenCheckoutConflict moves a Browsing session to ResolvingCheckoutConflict.
func (s *Session) OpenCheckoutConflict(conflict *cart.CheckoutConflict) error {
	if conflict == nil {
		return ErrNoPendingCheckoutConflict
	}
	if err := s.transition(ResolvingCheckoutConflict); err != nil {
		return err
	}
	s.checkoutConflict = conflict
	return nil
}

// TakeCheckoutConflict returns the conflict being resolved and forgets it.
// The phase is left to the next step.
func (s *Session) TakeCheckoutConflict() (*cart.CheckoutConflict, error) {
	if s.phase != ResolvingCheckoutConflict || s.checkoutConflict == nil {
		return nil, fmt.Errorf("%w: no checkout conflict while %s", ErrPhaseTransitionIsInvalid, s.phase)
	}
	conflict := s.checkoutConflict
	s.checkoutConflict = nil
	return conflict, nil
}

// AdoptLocation sets the active store while a checkout conflict is resolved.
func (s *Session) AdoptLocation(location kernel.Location) error {
	if s.phase != ResolvingCheckoutConflict {
		return fmt.Errorf("%w: store is fixed while %s", ErrPhaseTransitionIsInvalid, s.phase)
	}
	if err := requireKnown(location); err != nil {
		return err
	}
	s.location = location
	return nil
}

// PresentOffer moves the session to ReviewingUpsell with offer.
func (s *Session) PresentOffer(offer upsell.Offer) error {
	if offer == nil {
		return ErrNoPendingOffer
	}
	if err := s.transition(ReviewingUpsell); err != nil {
		return err
	}
	s.offer = offer
	return nil
}

// TakeOffer returns the offer under review and forgets it.
func (s *Session) TakeOffer() (upsell.Offer, error) {
	if s.phase != ReviewingUpsell || s.offer == nil {
		return nil, fmt.Errorf("%w: no upsell offer while %s", ErrPhaseTransitionIsInvalid, s.phase)
	}
	offer := s.offer
	s.offer = nil
	return offer, nil
}

// OpenForm moves the session to CollectingInfo. Previously typed form data is kept.
func (s *Session) OpenForm() error {
	return s.transition(CollectingInfo)
}

// UpdateForm replaces the form data while CollectingInfo.
func (s *Session) UpdateForm(form checkout.Form) error {
	if s.phase != CollectingInfo {
		return fmt.Errorf("%w: form is closed while %s", ErrPhaseTransitionIsInvalid, s.phase)
	}
	s.form = form
	return nil
}

// MarkSubmitted records the submitted order and shows the confirmation.
// The cart stays as it is until Dismiss.
func (s *Session) MarkSubmitted(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := s.transition(Submitted); err != nil {
		return err
	}
	s.lastOrderID = orderID
	return nil
}

// Cancel closes the open conflict, offer or form and returns to Browsing.
// Neither the cart nor the form data change. Cancelling while Browsing is a no-op.
func (s *Session) Cancel() error {
	if s.phase == Browsing {
		return nil
	}
	if s.phase == Submitted {
		return fmt.Errorf("%w: a submitted checkout is closed by dismissing it", ErrPhaseTransitionIsInvalid)
	}
	if err := s.transition(Browsing); err != nil {
		return err
	}
	s.checkoutConflict = nil
	s.offer = nil
	return nil
}

// Dismiss closes the confirmation, empties the cart and resets the form.
func (s *Session) Dismiss() error {
	if s.phase != Submitted {
		return fmt.Errorf("%w: nothing to dismiss while %s", ErrPhaseTransitionIsInvalid, s.phase)
	}
	if err := s.transition(Browsing); err != nil {
		return err
	}
	s.cart.Clear()
	s.pendingAdd = nil
	s.form = checkout.Form{}
	return nil
}

func (s *Session) transition(next Phase) error {
	phase, err := s.phase.TransitionTo(next)
	if err != nil {
		return err
	}
	s.phase = phase
	return nil
}

func requireKnown(location kernel.Location) error {
	if !location.IsKnown() {
		return errs.NewValueIsInvalidErrorWithCause("location", fmt.Errorf("%s is not a store", location))
	}
	return nil
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}
