package guard_test

import (
	"errors"
	"testing"

	"farmadelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("pedido not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardEmbeddedUsage shows the guard embedded in a value object.
func TestConstructorGuardEmbeddedUsage(t *testing.T) {
	type stockUpdate struct {
		stock int
		guard guard.ConstructorGuard
	}

	errNotConstructed := errors.New("stockUpdate must be created via newStockUpdate")

	newStockUpdate := func(stock int) (stockUpdate, error) {
		if stock < 0 {
			return stockUpdate{}, errors.New("stock cannot be negative")
		}
		return stockUpdate{stock: stock, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_validates", func(t *testing.T) {
		s, err := newStockUpdate(3)

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errNotConstructed))
		assert.Equal(t, 3, s.stock)
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var s stockUpdate

		assert.Equal(t, errNotConstructed, s.guard.Validate(errNotConstructed))
	})

	t.Run("constructor_rejects_negative_stock", func(t *testing.T) {
		_, err := newStockUpdate(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})
}
