package queries

import (
	"context"

	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/services"
)

// GetCatalogQueryHandler projects the catalog through the price table.
type GetCatalogQueryHandler struct {
	catalog  *catalog.Catalog
	resolver services.PricingResolver
}

func NewGetCatalogQueryHandler(cat *catalog.Catalog, resolver services.PricingResolver) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{catalog: cat, resolver: resolver}
}

func (h GetCatalogQueryHandler) Handle(_ context.Context, query GetCatalogQuery) (GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCatalogQueryResponse{}, err
	}

	return GetCatalogQueryResponse{
		Location: query.Location(),
		Products: h.resolver.Resolve(h.catalog, query.Location()),
	}, nil
}
