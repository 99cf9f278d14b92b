package session

import (
	"fmt"

	"taproom/internal/pkg/errs"
)

// Phase is where a session stands in the checkout flow.
//
// State transitions:
//
//	Browsing                  ──> ResolvingCheckoutConflict | ReviewingUpsell | CollectingInfo
//	ResolvingCheckoutConflict ──> ReviewingUpsell | CollectingInfo | Browsing
//	ReviewingUpsell           ──> CollectingInfo | Browsing
//	CollectingInfo            ──> Submitted | Browsing
//	Submitted                 ──> Browsing
//
// A checkout request skips the steps it does not need: no conflict goes
// straight to the upsell or the form, no offer goes straight to the form.
type Phase int

const (
	// PhaseUnknown represents an invalid or undefined phase.
	PhaseUnknown Phase = iota

	// Browsing is the default phase: the cart can be edited and the store changed.
	Browsing

	// ResolvingCheckoutConflict waits for switch, clear or reprice.
	ResolvingCheckoutConflict

	// ReviewingUpsell shows a keg or growler offer.
	ReviewingUpsell

	// CollectingInfo is the checkout form.
	CollectingInfo

	// Submitted shows the confirmation until the customer dismisses it.
	Submitted
)

var ErrPhaseTransitionIsInvalid = errs.NewValueIsInvalidError("phase transition is invalid")

func getPhaseStrings() map[Phase]string {
	return map[Phase]string{
		PhaseUnknown:              "Unknown",
		Browsing:                  "Browsing",
		ResolvingCheckoutConflict: "ResolvingCheckoutConflict",
		ReviewingUpsell:           "ReviewingUpsell",
		CollectingInfo:            "CollectingInfo",
		Submitted:                 "Submitted",
	}
}

func getPhaseTransitions() map[Phase][]Phase {
	return map[Phase][]Phase{
		Browsing:                  {ResolvingCheckoutConflict, ReviewingUpsell, CollectingInfo},
		ResolvingCheckoutConflict: {ReviewingUpsell, CollectingInfo, Browsing},
		ReviewingUpsell:           {CollectingInfo, Browsing},
		CollectingInfo:            {Submitted, Browsing},
		Submitted:                 {Browsing},
	}
}

func (p Phase) Validate() error {
	if p <= PhaseUnknown || p > Submitted {
		return errs.NewValueIsInvalidErrorWithCause("phase", fmt.Errorf("%d is not a valid phase", p))
	}
	return nil
}

func (p Phase) String() string {
	if str, ok := getPhaseStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether next directly follows p.
func (p Phase) CanTransitionTo(next Phase) bool {
	for _, allowed := range getPhaseTransitions()[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the move is allowed, or p and
// ErrPhaseTransitionIsInvalid.
func (p Phase) TransitionTo(next Phase) (Phase, error) {
	if !p.CanTransitionTo(next) {
		return p, fmt.Errorf("%w: %s -> %s", ErrPhaseTransitionIsInvalid, p, next)
	}
	return next, nil
}
