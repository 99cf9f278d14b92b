package cart_test

import (
	"testing"

	"taproom/internal/core/domain/model/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestMergeExtras(t *testing.T) {
	current := cart.Extras{RentTonel: true, Mugs: cart.Mugs24, RequestMoreCupsQuote: false}

	tests := []struct {
		name     string
		patch    cart.ExtrasPatch
		expected cart.Extras
	}{
		{
			name:     "empty patch keeps everything",
			patch:    cart.ExtrasPatch{},
			expected: current,
		},
		{
			name:     "supplied false overwrites true",
			patch:    cart.ExtrasPatch{RentTonel: ptr(false)},
			expected: cart.Extras{RentTonel: false, Mugs: cart.Mugs24},
		},
		{
			name:     "mugs tier replaced",
			patch:    cart.ExtrasPatch{Mugs: ptr(cart.Mugs48)},
			expected: cart.Extras{RentTonel: true, Mugs: cart.Mugs48},
		},
		{
			name: "every field supplied",
			patch: cart.ExtrasPatch{
				RentTonel:            ptr(false),
				Mugs:                 ptr(cart.MugsNone),
				RequestMoreCupsQuote: ptr(true),
			},
			expected: cart.Extras{RequestMoreCupsQuote: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cart.MergeExtras(current, tt.patch))
		})
	}
}

func TestExtras_Surcharge(t *testing.T) {
	assert.Equal(t, "0.00", cart.Extras{}.Surcharge().String())
	assert.Equal(t, "30.00", cart.Extras{RentTonel: true}.Surcharge().String())
	assert.Equal(t, "70.00", cart.Extras{RentTonel: true, Mugs: cart.Mugs36}.Surcharge().String())
	assert.Equal(t, "50.00", cart.Extras{Mugs: cart.Mugs48, RequestMoreCupsQuote: true}.Surcharge().String())
}

func TestParseMugsTier(t *testing.T) {
	for quantity, expected := range map[int]cart.MugsTier{0: cart.MugsNone, 24: cart.Mugs24, 36: cart.Mugs36, 48: cart.Mugs48} {
		tier, err := cart.ParseMugsTier(quantity)
		require.NoError(t, err)
		assert.Equal(t, expected, tier)
		assert.Equal(t, quantity, tier.Quantity())
	}

	_, err := cart.ParseMugsTier(12)
	require.Error(t, err)
	require.Error(t, cart.MugsTier(9).Validate())
}
