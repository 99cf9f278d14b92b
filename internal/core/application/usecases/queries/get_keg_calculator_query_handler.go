package queries

import (
	"context"

	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/services"
)

type GetKegCalculatorQueryHandler struct {
	catalog  *catalog.Catalog
	resolver services.PricingResolver
}

func NewGetKegCalculatorQueryHandler(cat *catalog.Catalog, resolver services.PricingResolver) GetKegCalculatorQueryHandler {
	return GetKegCalculatorQueryHandler{catalog: cat, resolver: resolver}
}

func (h GetKegCalculatorQueryHandler) Handle(
	_ context.Context,
	query GetKegCalculatorQuery,
) (GetKegCalculatorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetKegCalculatorQueryResponse{}, err
	}

	estimate, err := services.EstimateKeg(query.Guests(), query.Hours(), query.DrinkersPercent())
	if err != nil {
		return GetKegCalculatorQueryResponse{}, err
	}

	products := h.catalog.ByCategory(estimate.Category)
	kegs := make([]catalog.PricedProduct, 0, len(products))
	for _, p := range products {
		kegs = append(kegs, catalog.PricedProduct{Product: p, EffectivePrice: h.resolver.PriceOf(p, query.Location())})
	}

	return GetKegCalculatorQueryResponse{
		Liters:   estimate.Liters,
		Category: estimate.Category,
		Kegs:     kegs,
	}, nil
}
