package cart

import (
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
)

// LineItem is one product in the cart.
//
// It keeps a snapshot of the product and the effective price resolved for the
// cart's location when the item was added (or last repriced), so cart totals do
// not move when the customer merely browses another location.
type LineItem struct {
	product        catalog.Product
	quantity       int
	extras         Extras
	effectivePrice kernel.Money
	upsellOrigin   bool
}

func (l LineItem) Product() catalog.Product {
	return l.product
}

func (l LineItem) ProductID() catalog.ProductID {
	return l.product.ID()
}

func (l LineItem) Quantity() int {
	return l.quantity
}

func (l LineItem) Extras() Extras {
	return l.extras
}

// EffectivePrice is the location price of the product without extras.
func (l LineItem) EffectivePrice() kernel.Money {
	return l.effectivePrice
}

// IsUpsellOrigin reports whether the item was added from an upsell suggestion.
// It does not affect price.
func (l LineItem) IsUpsellOrigin() bool {
	return l.upsellOrigin
}

// UnitPrice is the effective price plus the extras surcharge.
func (l LineItem) UnitPrice() kernel.Money {
	return l.effectivePrice.Add(l.extras.Surcharge())
}

// Subtotal is UnitPrice times quantity.
func (l LineItem) Subtotal() kernel.Money {
	return l.UnitPrice().Mul(l.quantity)
}

func (l *LineItem) applyExtras(patch ExtrasPatch) {
	if !l.product.Category().IsKeg() {
		return
	}
	l.extras = MergeExtras(l.extras, patch)
}
