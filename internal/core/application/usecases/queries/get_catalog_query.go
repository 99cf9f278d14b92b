// Package queries contains the read side of the engine: priced catalog,
// session views, the keg calculator and the journal backlog.
package queries

import (
	"errors"

	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/guard"
)

var (
	ErrGetCatalogQueryIsNotConstructed = errors.New(
		"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
	)
)

// GetCatalogQuery lists every product priced for one store.
// LocationUnknown yields the base prices shown before a store is picked.
//
// Example:
//
//	query, err := NewGetCatalogQuery(kernel.FozDoIguacu)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
//	for _, p := range resp.Products {
//	    fmt.Printf("%s R$ %s\n", p.Product.Name(), p.EffectivePrice)
//	}
type GetCatalogQuery struct {
	location kernel.Location

	guard guard.ConstructorGuard
}

func NewGetCatalogQuery(location kernel.Location) (GetCatalogQuery, error) {
	if err := location.Validate(); err != nil {
		return GetCatalogQuery{}, err
	}
	return GetCatalogQuery{location: location, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

func (q GetCatalogQuery) Location() kernel.Location {
	return q.location
}

// GetCatalogQueryResponse is the priced catalog in catalog order.
type GetCatalogQueryResponse struct {
	Location kernel.Location
	Products []catalog.PricedProduct
}
