package kernel_test

import (
	"testing"

	"taproom/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	t.Run("zero_value_is_zero_reais", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("add_and_mul", func(t *testing.T) {
		unit := kernel.Reais(16).Add(kernel.Reais(30))

		assert.Equal(t, "92.00", unit.Mul(2).String())
		assert.True(t, unit.Mul(0).IsZero())
	})

	t.Run("equal_ignores_scale", func(t *testing.T) {
		parsed, err := kernel.ParseMoney("16.00")

		require.NoError(t, err)
		assert.True(t, parsed.Equal(kernel.Reais(16)))
	})

	t.Run("exact_decimal_sums", func(t *testing.T) {
		tenCents, err := kernel.ParseMoney("0.10")
		require.NoError(t, err)

		sum := kernel.Money{}
		for range 3 {
			sum = sum.Add(tenCents)
		}

		assert.Equal(t, "0.30", sum.String())
	})

	t.Run("negative_is_rejected", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))
		require.ErrorIs(t, err, kernel.ErrMoneyIsNegative)

		_, err = kernel.ParseMoney("-2.50")
		require.Error(t, err)
	})

	t.Run("garbage_is_rejected", func(t *testing.T) {
		_, err := kernel.ParseMoney("sixteen")
		require.Error(t, err)
	})
}
