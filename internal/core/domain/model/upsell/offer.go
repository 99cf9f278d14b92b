// Package upsell holds the suggestion shown between the checkout request and
// the checkout form: either keg accessories or complementary growlers.
//
// Offers are computed by the upsell recommender, kept on the session only
// while the customer is looking at them, and never persisted.
package upsell

import (
	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/catalog"
)

// NoMysterySlot is the MysteryIndex of a growler offer without a mystery pick.
const NoMysterySlot = -1

// Offer is either a *KegOffer or a *GrowlerOffer.
type Offer interface {
	isOffer()
}

// KegOffer lists the keg accessories the cart does not have yet.
// At least one field is true.
type KegOffer struct {
	OfferTonel     bool
	OfferMugs      bool
	OfferCupsQuote bool
}

func (*KegOffer) isOffer() {}

// GrowlerOffer lists up to three growlers not yet in the cart, best first.
// MysteryIndex is the position shown face down, or NoMysterySlot.
type GrowlerOffer struct {
	Candidates   []catalog.PricedProduct
	MysteryIndex int
}

func (*GrowlerOffer) isOffer() {}

// Contains reports whether id is one of the offered growlers.
func (o *GrowlerOffer) Contains(id catalog.ProductID) bool {
	for _, c := range o.Candidates {
		if c.Product.ID() == id {
			return true
		}
	}
	return false
}

// Selection is the customer's answer to an offer. Decline ignores every other field.
// For a keg offer only the offered accessories are applied; for a growler offer
// only offered products are added.
type Selection struct {
	Decline bool

	RentTonel bool
	Mugs      cart.MugsTier
	CupsQuote bool

	Products []catalog.ProductID
}

// KegPatch converts a keg selection into the extras patch applied to every keg
// line, restricted to what the offer exposed. ok is false when nothing applies.
func (s Selection) KegPatch(offer *KegOffer) (patch cart.ExtrasPatch, ok bool) {
	if s.Decline || offer == nil {
		return cart.ExtrasPatch{}, false
	}
	if offer.OfferTonel && s.RentTonel {
		patch.RentTonel = &s.RentTonel
	}
	if offer.OfferMugs && s.Mugs != cart.MugsNone {
		patch.Mugs = &s.Mugs
	}
	if offer.OfferCupsQuote && s.CupsQuote {
		patch.RequestMoreCupsQuote = &s.CupsQuote
	}
	return patch, !patch.IsEmpty()
}
