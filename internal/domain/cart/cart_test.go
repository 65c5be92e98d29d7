//go:build unit

package cart_test

import (
	"testing"

	"pos-engine/internal/domain/cart"
	"pos-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem(t *testing.T) {
	t.Run("appends a quantity-1 line with a price snapshot", func(t *testing.T) {
		c := cart.New()
		p := builder.NewProductBuilder().MustBuild()

		require.NoError(t, c.AddItem(p))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, p.ID(), lines[0].ProductID)
		assert.Equal(t, p.SKU(), lines[0].SKU)
		assert.Equal(t, p.Name(), lines[0].Name)
		assert.Equal(t, p.Category(), lines[0].Category)
		assert.Equal(t, p.Price(), lines[0].UnitPrice)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("increments the existing line for the same product", func(t *testing.T) {
		c := cart.New()
		p := builder.NewProductBuilder().MustBuild()

		require.NoError(t, c.AddItem(p))
		require.NoError(t, c.AddItem(p))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("out of stock leaves the cart unchanged", func(t *testing.T) {
		c := cart.New()
		p := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.StockQty = 0
		}).MustBuild()

		err := c.AddItem(p)

		require.ErrorIs(t, err, cart.ErrOutOfStock)
		assert.True(t, c.IsEmpty())
	})

	t.Run("price snapshot survives catalog price changes", func(t *testing.T) {
		c := cart.New()
		b := builder.NewProductBuilder()
		require.NoError(t, c.AddItem(b.MustBuild()))

		b.Price = 9.99
		require.NoError(t, c.AddItem(b.MustBuild()))

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 4.99, lines[0].UnitPrice)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("replaces the quantity", func(t *testing.T) {
		c := cart.New()
		p := builder.NewProductBuilder().MustBuild()
		require.NoError(t, c.AddItem(p))

		c.UpdateQuantity(p.ID(), 5)

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("quantity below 1 removes the line entirely", func(t *testing.T) {
		c := cart.New()
		p := builder.NewProductBuilder().MustBuild()
		require.NoError(t, c.AddItem(p))

		c.UpdateQuantity(p.ID(), 0)

		assert.True(t, c.IsEmpty())
		assert.False(t, c.Contains(p.ID()))
	})

	t.Run("does not re-check stock on increase", func(t *testing.T) {
		c := cart.New()
		p := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.StockQty = 1
		}).MustBuild()
		require.NoError(t, c.AddItem(p))

		c.UpdateQuantity(p.ID(), 50)

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 50, lines[0].Quantity)
	})

	t.Run("unknown product id is a no-op", func(t *testing.T) {
		c := cart.New()
		p := builder.NewProductBuilder().MustBuild()
		require.NoError(t, c.AddItem(p))

		other := builder.NewProductBuilder().MustBuild()
		c.UpdateQuantity(other.ID(), 3)

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})
}

func TestClear(t *testing.T) {
	c := cart.New()
	require.NoError(t, c.AddItem(builder.NewProductBuilder().MustBuild()))
	require.NoError(t, c.AddItem(builder.NewProductBuilder().MustBuild()))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Lines())
}

func TestLinesReturnsCopy(t *testing.T) {
	c := cart.New()
	p := builder.NewProductBuilder().MustBuild()
	require.NoError(t, c.AddItem(p))

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}
