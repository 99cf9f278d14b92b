package catalog_test

import (
	"testing"

	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should build a product with flags", func(t *testing.T) {
		p, err := catalog.NewProduct("growler-vinho-tinto-1l", "Chopp de Vinho Tinto 1L",
			catalog.Growler, catalog.Lager, kernel.Reais(20), 1, catalog.FlagPopular, catalog.FlagWine)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, catalog.ProductID("growler-vinho-tinto-1l"), p.ID())
		assert.True(t, p.IsPopular())
		assert.True(t, p.IsWine())
		assert.False(t, p.IsChampion())
		assert.False(t, p.RequiresAvailabilityCheck())
		assert.True(t, kernel.Reais(20).Equal(p.BasePrice()))
	})

	t.Run("should report every invalid attribute", func(t *testing.T) {
		_, err := catalog.NewProduct("", "", catalog.CategoryUnknown, catalog.StyleUnknown, kernel.Money{}, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "id")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "category")
		assert.Contains(t, err.Error(), "style")
		assert.Contains(t, err.Error(), "volume")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var p catalog.Product
		require.ErrorIs(t, p.Validate(), catalog.ErrProductIsNotConstructed)
	})
}

func TestCategoryAndStyle(t *testing.T) {
	assert.True(t, catalog.Keg30.IsKeg())
	assert.True(t, catalog.Keg50.IsKeg())
	assert.False(t, catalog.Growler.IsKeg())

	assert.True(t, catalog.Pilsen.IsBase())
	assert.True(t, catalog.Lager.IsBase())
	assert.False(t, catalog.IPA.IsBase())
	assert.Equal(t, "Puro Malte", catalog.Lager.String())

	c, err := catalog.ParseCategory("keg-50l")
	require.NoError(t, err)
	assert.Equal(t, catalog.Keg50, c)

	_, err = catalog.ParseCategory("can")
	require.Error(t, err)
}
