package services

import (
	"fmt"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
)

// CartGuard keeps every non-empty cart bound to exactly one store.
//
// Business rules:
//   - an add to an empty cart is accepted and pins the cart to the current store
//   - an add to a cart pinned to the current store, or with either store unknown, is accepted
//   - an add to a cart pinned to another store is returned as an AddConflict and the cart is left untouched
//   - a non-empty cart whose store drifted from the current one conflicts at checkout
//
// Lines are priced at the store they will be pinned to. When the customer has
// not chosen a store yet the pinned store is used, and base prices when neither is known.
//
// Example:
//
//	guard := services.NewCartGuard(cat, resolver)
//	conflict, err := guard.RequestAdd(c, catalog.GrowlerPilsen, cart.ExtrasPatch{}, false, kernel.FozDoIguacu)
//	if conflict != nil {
//	    // ask the customer: discard-and-replace or cancel
//	}
type CartGuard struct {
	catalog *catalog.Catalog
	pricing PricingResolver
}

func NewCartGuard(cat *catalog.Catalog, pricing PricingResolver) CartGuard {
	return CartGuard{catalog: cat, pricing: pricing}
}

// RequestAdd adds productID to c or reports the location conflict that prevents it.
//
// Returns:
//   - nil, nil when the product was added
//   - the conflict, nil when the cart is pinned to a different store; c is unchanged
//   - nil, error when the product is unknown or the extras are invalid
func (g CartGuard) RequestAdd(
	c *cart.Cart,
	productID catalog.ProductID,
	patch cart.ExtrasPatch,
	upsellOrigin bool,
	current kernel.Location,
) (*cart.AddConflict, error) {
	product, err := g.product(productID)
	if err != nil {
		return nil, err
	}

	pinned := c.PinnedLocation()
	if !c.IsEmpty() && pinned.IsKnown() && current.IsKnown() && pinned != current {
		return &cart.AddConflict{
			ProductID:         productID,
			Extras:            patch,
			UpsellOrigin:      upsellOrigin,
			CartLocation:      pinned,
			RequestedLocation: current,
		}, nil
	}

	target := current
	if !target.IsKnown() {
		target = pinned
	}

	if err = c.Add(product, g.pricing.PriceOf(product, target), patch, upsellOrigin); err != nil {
		return nil, err
	}
	g.pinTo(c, target)
	return nil, nil
}

// ResolveAddConflict applies the customer's answer to an AddConflict.
// DiscardAndReplace clears c, pins it to the requested store and adds only the
// pending item. CancelAdd leaves c untouched.
func (g CartGuard) ResolveAddConflict(c *cart.Cart, conflict *cart.AddConflict, choice cart.AddConflictChoice) error {
	if conflict == nil {
		return errs.NewValueIsRequiredError("conflict")
	}

	switch choice {
	case cart.CancelAdd:
		return nil
	case cart.DiscardAndReplace:
		product, err := g.product(conflict.ProductID)
		if err != nil {
			return err
		}
		if err = conflict.Extras.Validate(); err != nil {
			return err
		}

		c.Clear()
		if err = c.Add(product, g.pricing.PriceOf(product, conflict.RequestedLocation), conflict.Extras, conflict.UpsellOrigin); err != nil {
			return err
		}
		c.Pin(conflict.RequestedLocation)
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("choice", fmt.Errorf("%d is not an add conflict choice", choice))
	}
}

// AdoptLocation binds c to a store the customer just chose. An unpinned,
// non-empty cart (filled before any store was chosen) is repriced and pinned.
// A pinned cart is left alone; drift is caught at checkout.
func (g CartGuard) AdoptLocation(c *cart.Cart, location kernel.Location) {
	if c.IsEmpty() || c.IsPinned() {
		return
	}
	g.pinTo(c, location)
}

// CheckCheckout reports a conflict when the non-empty cart is pinned to a
// store other than current. An unknown store on either side never conflicts.
func (g CartGuard) CheckCheckout(c *cart.Cart, current kernel.Location) *cart.CheckoutConflict {
	pinned := c.PinnedLocation()
	if c.IsEmpty() || !pinned.IsKnown() || !current.IsKnown() || pinned == current {
		return nil
	}
	return &cart.CheckoutConflict{CartLocation: pinned, CurrentLocation: current}
}

// ResolveCheckoutConflict applies the customer's answer to a CheckoutConflict
// and returns the store the session continues with.
//
// Returns:
//   - SwitchLocation: the cart's store, cart unchanged
//   - ClearCart: the current store, cart emptied and unpinned
//   - RepriceCart: the current store, every line repriced there and the cart re-pinned to it
func (g CartGuard) ResolveCheckoutConflict(
	c *cart.Cart,
	conflict *cart.CheckoutConflict,
	choice cart.CheckoutConflictChoice,
) (kernel.Location, error) {
	if conflict == nil {
		return kernel.LocationUnknown, errs.NewValueIsRequiredError("conflict")
	}

	switch choice {
	case cart.SwitchLocation:
		return conflict.CartLocation, nil
	case cart.ClearCart:
		c.Clear()
		return conflict.CurrentLocation, nil
	case cart.RepriceCart:
		c.Reprice(g.pricing.Pricer(conflict.CurrentLocation))
		c.Pin(conflict.CurrentLocation)
		return conflict.CurrentLocation, nil
	default:
		return kernel.LocationUnknown, errs.NewValueIsInvalidErrorWithCause("choice",
			fmt.Errorf("%d is not a checkout conflict choice", choice))
	}
}

// pinTo pins an unpinned cart to a known location, repricing lines that were
// priced before the store was known.
func (g CartGuard) pinTo(c *cart.Cart, location kernel.Location) {
	if c.IsPinned() || !location.IsKnown() {
		return
	}
	c.Reprice(g.pricing.Pricer(location))
	c.Pin(location)
}

func (g CartGuard) product(id catalog.ProductID) (catalog.Product, error) {
	product, ok := g.catalog.Get(id)
	if !ok {
		return catalog.Product{}, errs.NewObjectNotFoundError("productId", string(id))
	}
	return product, nil
}
