package cart

import (
	"fmt"

	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
)

// AddConflict is returned instead of mutating the cart when a product is added
// while the customer is at a different store than the one the cart is pinned to.
// It carries the pending add so it can be replayed on discard-and-replace.
type AddConflict struct {
	ProductID         catalog.ProductID
	Extras            ExtrasPatch
	UpsellOrigin      bool
	CartLocation      kernel.Location
	RequestedLocation kernel.Location
}

// CheckoutConflict reports that the selected store drifted from the cart's
// pinned store between adding items and requesting checkout.
type CheckoutConflict struct {
	CartLocation    kernel.Location
	CurrentLocation kernel.Location
}

// AddConflictChoice resolves an AddConflict.
type AddConflictChoice int

const (
	AddChoiceUnknown AddConflictChoice = iota

	// DiscardAndReplace clears the cart, pins the requested store and adds only the pending item.
	DiscardAndReplace

	// CancelAdd drops the pending item and leaves the cart untouched.
	CancelAdd
)

// CheckoutConflictChoice resolves a CheckoutConflict.
type CheckoutConflictChoice int

const (
	CheckoutChoiceUnknown CheckoutConflictChoice = iota

	// SwitchLocation adopts the cart's pinned store as the active one.
	SwitchLocation

	// ClearCart empties and unpins the cart and keeps the current store.
	ClearCart

	// RepriceCart reprices every line at the current store and re-pins the cart to it.
	RepriceCart
)

// ParseAddConflictChoice maps "replace" and "cancel" to choices.
func ParseAddConflictChoice(s string) (AddConflictChoice, error) {
	switch s {
	case "replace":
		return DiscardAndReplace, nil
	case "cancel":
		return CancelAdd, nil
	default:
		return AddChoiceUnknown, errs.NewValueIsInvalidErrorWithCause("choice", fmt.Errorf("%q is not an add conflict choice", s))
	}
}

// ParseCheckoutConflictChoice maps "switch", "clear" and "reprice" to choices.
func ParseCheckoutConflictChoice(s string) (CheckoutConflictChoice, error) {
	switch s {
	case "switch":
		return SwitchLocation, nil
	case "clear":
		return ClearCart, nil
	case "reprice":
		return RepriceCart, nil
	default:
		return CheckoutChoiceUnknown, errs.NewValueIsInvalidErrorWithCause("choice", fmt.Errorf("%q is not a checkout conflict choice", s))
	}
}
