package kernel_test

import (
	"testing"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		code     string
		expected kernel.Location
	}{
		{code: "", expected: kernel.LocationUnknown},
		{code: "marechal-candido-rondon", expected: kernel.MarechalCandidoRondon},
		{code: "foz-do-iguacu", expected: kernel.FozDoIguacu},
	}

	for _, tt := range tests {
		t.Run("code_"+tt.code, func(t *testing.T) {
			loc, err := kernel.ParseLocation(tt.code)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, loc)
			assert.Equal(t, tt.code, loc.Code())
		})
	}

	t.Run("unknown_code_is_invalid", func(t *testing.T) {
		_, err := kernel.ParseLocation("curitiba")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLocation(t *testing.T) {
	t.Run("known_locations", func(t *testing.T) {
		for _, loc := range kernel.Locations() {
			assert.True(t, loc.IsKnown())
			require.NoError(t, loc.Validate())
		}
		assert.False(t, kernel.LocationUnknown.IsKnown())
	})

	t.Run("out_of_range_value_is_invalid", func(t *testing.T) {
		require.Error(t, kernel.Location(42).Validate())
		assert.Equal(t, "Unknown", kernel.Location(42).String())
	})

	t.Run("display_names", func(t *testing.T) {
		assert.Equal(t, "Foz do Iguaçu", kernel.FozDoIguacu.String())
		assert.Equal(t, "Marechal Cândido Rondon", kernel.MarechalCandidoRondon.String())
	})
}
