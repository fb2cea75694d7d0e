package order_test

import (
	"testing"

	"fabrication/internal/core/domain/model/order"
	"fabrication/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create item stamped with its order", func(t *testing.T) {
		item, err := order.NewItem(50, "Window", 1000, 1200, 2)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, int64(50), item.OrderID())
		assert.Equal(t, "Window", item.ProductType())
		assert.Equal(t, 1000, item.WidthMm())
		assert.Equal(t, 1200, item.HeightMm())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, int64(0), item.ID(), "id is assigned by the store")
	})

	t.Run("should accept any non-empty product type", func(t *testing.T) {
		item, err := order.NewItem(50, "Skylight", 600, 600, 1)

		require.NoError(t, err)
		assert.Equal(t, "Skylight", item.ProductType())
	})

	t.Run("should reject non-positive order id", func(t *testing.T) {
		_, err := order.NewItem(0, "Window", 1000, 1200, 2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty product type", func(t *testing.T) {
		_, err := order.NewItem(50, "", 1000, 1200, 2)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive dimensions and quantity", func(t *testing.T) {
		testCases := []struct {
			name     string
			widthMm  int
			heightMm int
			quantity int
		}{
			{"zero width", 0, 1200, 2},
			{"negative width", -1, 1200, 2},
			{"zero height", 1000, 0, 2},
			{"negative height", 1000, -100, 2},
			{"zero quantity", 1000, 1200, 0},
			{"negative quantity", 1000, 1200, -2},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewItem(50, "Window", tc.widthMm, tc.heightMm, tc.quantity)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should restore item with persisted id", func(t *testing.T) {
		item, err := order.RestoreItem(3, 50, "Door", 900, 2100, 1)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, int64(3), item.ID())
		assert.Equal(t, int64(50), item.OrderID())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		_, err := order.RestoreItem(0, 50, "Door", 900, 2100, 1)

		require.Error(t, err)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should reject zero value item", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})

	t.Run("should reject nil item", func(t *testing.T) {
		var item *order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}
