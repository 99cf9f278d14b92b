package services

import (
	"errors"
	"fmt"
	"slices"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/upsell"
	"taproom/internal/pkg/errs"
)

const (
	growlerOfferSize = 3
	mysterySlot      = 2
)

var ErrUpsellAddConflict = errs.NewValueIsInvalidErrorWithCause("upsell",
	errors.New("suggested product conflicts with the cart store"))

// DefaultAlwaysSuggest is the house list of growlers offered first whenever
// they are not in the cart yet.
func DefaultAlwaysSuggest() []catalog.ProductID {
	return []catalog.ProductID{
		catalog.GrowlerSessionIPA,
		catalog.GrowlerWhiteWine,
		catalog.GrowlerRedWine,
	}
}

// UpsellRecommender decides what, if anything, to suggest when checkout is requested.
//
// Keg path (any keg in the cart): offer the keg accessories no keg line has yet
// (tonel, mugs, extra-cups quote). Nothing is offered when all three are present.
//
// Growler path (no keg, at least one growler): rank growlers not in the cart by
//  1. the always-suggest list, in list order
//  2. style affinity with the cart, in catalog order
//  3. everything else, champions first, then catalog order
//
// keep the first occurrence of every product and offer the top three. The third
// position is the mystery pick: the best remaining candidate that is a wine or
// not a base style. When no candidate qualifies the next one is shown face up.
// Products that need an availability check are never suggested.
//
// Example:
//
//	recommender := services.NewUpsellRecommender(cat, resolver, services.DefaultAlwaysSuggest()...)
//	if offer := recommender.Recommend(c, kernel.MarechalCandidoRondon); offer != nil {
//	    // show the offer
//	}
type UpsellRecommender struct {
	catalog       *catalog.Catalog
	pricing       PricingResolver
	alwaysSuggest []catalog.ProductID
}

func NewUpsellRecommender(
	cat *catalog.Catalog,
	pricing PricingResolver,
	alwaysSuggest ...catalog.ProductID,
) UpsellRecommender {
	return UpsellRecommender{
		catalog:       cat,
		pricing:       pricing,
		alwaysSuggest: slices.Clone(alwaysSuggest),
	}
}

// Recommend returns a *upsell.KegOffer, a *upsell.GrowlerOffer, or nil when
// checkout should go straight to the form. Growler prices are resolved at location.
func (r UpsellRecommender) Recommend(c *cart.Cart, location kernel.Location) upsell.Offer {
	if c.HasKeg() {
		if offer := r.kegOffer(c); offer != nil {
			return offer
		}
		return nil
	}
	if c.HasGrowler() {
		if offer := r.growlerOffer(c, location); offer != nil {
			return offer
		}
	}
	return nil
}

// Accept applies a selection to c. A declined or empty selection changes nothing.
// Keg accessories go to every keg line; growlers are added through the cart
// guard marked as upsell origin. Products the offer did not show are ignored.
func (r UpsellRecommender) Accept(
	c *cart.Cart,
	offer upsell.Offer,
	selection upsell.Selection,
	guard CartGuard,
	location kernel.Location,
) error {
	if selection.Decline {
		return nil
	}

	switch o := offer.(type) {
	case *upsell.KegOffer:
		patch, ok := selection.KegPatch(o)
		if !ok {
			return nil
		}
		return c.ApplyToKegs(patch)
	case *upsell.GrowlerOffer:
		seen := make(map[catalog.ProductID]bool, len(selection.Products))
		for _, id := range selection.Products {
			if seen[id] || !o.Contains(id) {
				continue
			}
			seen[id] = true

			conflict, err := guard.RequestAdd(c, id, cart.ExtrasPatch{}, true, location)
			if err != nil {
				return err
			}
			if conflict != nil {
				return ErrUpsellAddConflict
			}
		}
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("offer", fmt.Errorf("unsupported offer %T", offer))
	}
}

// Rank returns every growler the cart could be offered, best first.
func (r UpsellRecommender) Rank(c *cart.Cart) []catalog.Product {
	owned := make(map[catalog.ProductID]bool, c.Len())
	styles := make(map[catalog.Style]bool, c.Len())
	for _, item := range c.Items() {
		owned[item.ProductID()] = true
		styles[item.Product().Style()] = true
	}

	eligible := func(p catalog.Product) bool {
		return p.Category() == catalog.Growler && !owned[p.ID()] && !p.RequiresAvailabilityCheck()
	}

	var (
		ranked []catalog.Product
		seen   = make(map[catalog.ProductID]bool)
	)
	push := func(p catalog.Product) {
		if !eligible(p) || seen[p.ID()] {
			return
		}
		seen[p.ID()] = true
		ranked = append(ranked, p)
	}

	for _, id := range r.alwaysSuggest {
		if p, ok := r.catalog.Get(id); ok {
			push(p)
		}
	}

	growlers := r.catalog.ByCategory(catalog.Growler)
	for _, p := range growlers {
		if styles[p.Style()] {
			push(p)
		}
	}

	rest := slices.Clone(growlers)
	slices.SortStableFunc(rest, func(a, b catalog.Product) int {
		switch {
		case a.IsChampion() && !b.IsChampion():
			return -1
		case !a.IsChampion() && b.IsChampion():
			return 1
		default:
			return 0
		}
	})
	for _, p := range rest {
		push(p)
	}

	return ranked
}

// IsMysteryEligible reports whether p may be shown as the mystery pick.
func IsMysteryEligible(p catalog.Product) bool {
	return p.IsWine() || !p.Style().IsBase()
}

func (r UpsellRecommender) kegOffer(c *cart.Cart) *upsell.KegOffer {
	var hasTonel, hasMugs, hasCupsQuote bool
	for _, item := range c.Items() {
		if !item.Product().Category().IsKeg() {
			continue
		}
		extras := item.Extras()
		hasTonel = hasTonel || extras.RentTonel
		hasMugs = hasMugs || extras.Mugs != cart.MugsNone
		hasCupsQuote = hasCupsQuote || extras.RequestMoreCupsQuote
	}

	if hasTonel && hasMugs && hasCupsQuote {
		return nil
	}
	return &upsell.KegOffer{
		OfferTonel:     !hasTonel,
		OfferMugs:      !hasMugs,
		OfferCupsQuote: !hasCupsQuote,
	}
}

func (r UpsellRecommender) growlerOffer(c *cart.Cart, location kernel.Location) *upsell.GrowlerOffer {
	ranked := r.Rank(c)
	if len(ranked) == 0 {
		return nil
	}

	picks := ranked[:min(mysterySlot, len(ranked))]
	mysteryIndex := upsell.NoMysterySlot

	if len(ranked) > mysterySlot {
		third := ranked[mysterySlot]
		for _, p := range ranked[mysterySlot:] {
			if IsMysteryEligible(p) {
				third = p
				mysteryIndex = mysterySlot
				break
			}
		}
		picks = append(slices.Clone(picks), third)
	}

	offer := &upsell.GrowlerOffer{
		Candidates:   make([]catalog.PricedProduct, 0, growlerOfferSize),
		MysteryIndex: mysteryIndex,
	}
	for _, p := range picks {
		offer.Candidates = append(offer.Candidates, catalog.PricedProduct{
			Product:        p,
			EffectivePrice: r.pricing.PriceOf(p, location),
		})
	}
	return offer
}
