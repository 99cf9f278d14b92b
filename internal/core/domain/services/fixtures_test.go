package services_test

import (
	"testing"

	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

type engine struct {
	catalog     *catalog.Catalog
	resolver    services.PricingResolver
	guard       services.CartGuard
	recommender services.UpsellRecommender
	assembler   services.OrderAssembler
	flow        services.CheckoutFlow
}

func newEngine(t *testing.T) engine {
	t.Helper()

	cat, err := catalog.DefaultCatalog()
	require.NoError(t, err)
	table, err := catalog.DefaultPriceTable()
	require.NoError(t, err)

	return newEngineWith(t, cat, table, services.DefaultAlwaysSuggest()...)
}

func newEngineWith(t *testing.T, cat *catalog.Catalog, table catalog.PriceTable, always ...catalog.ProductID) engine {
	t.Helper()

	resolver := services.NewPricingResolver(table)
	guard := services.NewCartGuard(cat, resolver)
	recommender := services.NewUpsellRecommender(cat, resolver, always...)
	assembler := services.NewOrderAssembler(kernel.Reais(10))

	return engine{
		catalog:     cat,
		resolver:    resolver,
		guard:       guard,
		recommender: recommender,
		assembler:   assembler,
		flow:        services.NewCheckoutFlow(guard, recommender, assembler),
	}
}

func (e engine) product(t *testing.T, id catalog.ProductID) catalog.Product {
	t.Helper()
	p, ok := e.catalog.Get(id)
	require.True(t, ok, "product %s", id)
	return p
}
