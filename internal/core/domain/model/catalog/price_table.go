package catalog

import (
	"errors"
	"fmt"
	"maps"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
)

// LocationPricing is the price rule set of one store.
//
// Overrides replace the base price of individual products. Every product the
// overrides do not mention gets basePrice + Surcharges[category]; a category
// missing from Surcharges gets no surcharge. This makes the effective price
// defined for every product even when the override list is incomplete.
type LocationPricing struct {
	Location   kernel.Location
	Overrides  map[ProductID]kernel.Money
	Surcharges map[Category]kernel.Money
}

// PriceTable maps stores to their pricing rules. Stores without an entry use base prices.
type PriceTable struct {
	rules map[kernel.Location]LocationPricing
}

// NewPriceTable builds a table from per-location rules.
// Each rule must name a known location, at most once, with valid categories.
func NewPriceTable(rules ...LocationPricing) (PriceTable, error) {
	table := PriceTable{rules: make(map[kernel.Location]LocationPricing, len(rules))}

	var errList []error
	for _, rule := range rules {
		if !rule.Location.IsKnown() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("location",
				fmt.Errorf("price rule for %s", rule.Location)))
			continue
		}
		if _, dup := table.rules[rule.Location]; dup {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("location",
				fmt.Errorf("duplicate price rule for %s", rule.Location)))
			continue
		}
		for category := range rule.Surcharges {
			if err := category.Validate(); err != nil {
				errList = append(errList, err)
			}
		}
		table.rules[rule.Location] = copyRule(rule)
	}

	if err := errors.Join(errList...); err != nil {
		return PriceTable{}, err
	}
	return table, nil
}

// Rule returns the pricing rule of a location, if the location has one.
func (t PriceTable) Rule(location kernel.Location) (LocationPricing, bool) {
	rule, ok := t.rules[location]
	return rule, ok
}

// PriceOf applies the documented fallback order: explicit override, then
// base price plus category surcharge, then base price when the location has no rule.
func (r LocationPricing) PriceOf(p Product) kernel.Money {
	if override, ok := r.Overrides[p.ID()]; ok {
		return override
	}
	return p.BasePrice().Add(r.Surcharges[p.Category()])
}

func copyRule(rule LocationPricing) LocationPricing {
	out := LocationPricing{
		Location:   rule.Location,
		Overrides:  make(map[ProductID]kernel.Money, len(rule.Overrides)),
		Surcharges: make(map[Category]kernel.Money, len(rule.Surcharges)),
	}
	maps.Copy(out.Overrides, rule.Overrides)
	maps.Copy(out.Surcharges, rule.Surcharges)
	return out
}
