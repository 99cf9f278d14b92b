package services

import (
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
)

// PricingResolver projects catalog products through the price table of a location.
//
// Business rules:
//   - a location without a rule (including LocationUnknown) sells at base price
//   - a location with a rule uses the explicit override, else base + category surcharge
//   - resolution never fails and has no side effects
//
// Example:
//
//	resolver := services.NewPricingResolver(table)
//	priced := resolver.Resolve(cat, kernel.FozDoIguacu)
type PricingResolver struct {
	table catalog.PriceTable
}

func NewPricingResolver(table catalog.PriceTable) PricingResolver {
	return PricingResolver{table: table}
}

// Resolve prices every product of cat for location, in catalog order.
func (r PricingResolver) Resolve(cat *catalog.Catalog, location kernel.Location) []catalog.PricedProduct {
	products := cat.Products()
	priced := make([]catalog.PricedProduct, 0, len(products))
	for _, p := range products {
		priced = append(priced, catalog.PricedProduct{Product: p, EffectivePrice: r.PriceOf(p, location)})
	}
	return priced
}

// PriceOf is the effective price of one product at location.
func (r PricingResolver) PriceOf(p catalog.Product, location kernel.Location) kernel.Money {
	rule, ok := r.table.Rule(location)
	if !ok {
		return p.BasePrice()
	}
	return rule.PriceOf(p)
}

// Pricer binds the resolver to one location, in the shape Cart.Reprice expects.
func (r PricingResolver) Pricer(location kernel.Location) func(catalog.Product) kernel.Money {
	return func(p catalog.Product) kernel.Money {
		return r.PriceOf(p, location)
	}
}
