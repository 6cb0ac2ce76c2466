package kernel_test

import (
	"testing"

	"farmadelivery/internal/core/domain/model/kernel"
	"farmadelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should accept positive values", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
	})

	for _, v := range []int64{0, -1, -999} {
		t.Run("should reject non positive values", func(t *testing.T) {
			_, err := kernel.NewID(v)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestIDFromString(t *testing.T) {
	t.Run("should parse decimal path segments", func(t *testing.T) {
		id, err := kernel.IDFromString("7")

		require.NoError(t, err)
		assert.True(t, id.IsEqual(kernel.MustNewID(7)))
	})

	t.Run("should reject non numeric input", func(t *testing.T) {
		_, err := kernel.IDFromString("abc")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestID_ZeroValue(t *testing.T) {
	var id kernel.ID

	assert.Equal(t, kernel.ErrIDIsNotConstructed, id.Validate())
}
