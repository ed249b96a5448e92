package kernel_test

import (
	"testing"

	"restobot/internal/core/domain/model/kernel"
	"restobot/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept non-negative amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(12.99))

		require.NoError(t, err)
		assert.Equal(t, "12.99", m.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "is negative")
	})
}

func TestMoneyFromFloat(t *testing.T) {
	t.Run("should keep exact decimal value", func(t *testing.T) {
		m, err := kernel.MoneyFromFloat(2.50)

		require.NoError(t, err)
		assert.Equal(t, "2.50", m.String())
	})

	t.Run("should reject negative floats", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(-5)
		require.Error(t, err)
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("14.99")

		require.NoError(t, err)
		assert.Equal(t, "14.99", m.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("fourteen")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add sums amounts exactly", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("12.99")
		b, _ := kernel.MoneyFromString("8.99")

		assert.Equal(t, "21.98", a.Add(b).String())
	})

	t.Run("MulQuantity scales by item count", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("7.50")

		assert.Equal(t, "22.50", price.MulQuantity(3).String())
	})

	t.Run("zero value behaves as zero amount", func(t *testing.T) {
		var total kernel.Money
		price, _ := kernel.MoneyFromString("1.50")

		total = total.Add(price.MulQuantity(2))

		assert.Equal(t, "3.00", total.String())
	})

	t.Run("IsEqual ignores trailing zeros", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("2.5")
		b, _ := kernel.MoneyFromString("2.50")

		assert.True(t, a.IsEqual(b))
	})
}

func TestMoney_NoFloatDrift(t *testing.T) {
	// 0.1 + 0.2 is the classic float trap; decimals must not drift.
	a, _ := kernel.MoneyFromString("0.1")
	b, _ := kernel.MoneyFromString("0.2")

	assert.Equal(t, "0.30", a.Add(b).String())
}
