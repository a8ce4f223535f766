//go:build unit

package cart_test

import (
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/pkg/errs"
	"storefront/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.LineBuilder)
		errIs  error
	}{
		{name: "valid line", mutate: func(*builder.LineBuilder) {}},
		{name: "missing product id", mutate: func(b *builder.LineBuilder) { b.ProductID = "  " }, errIs: errs.ErrProductRequired},
		{name: "missing name", mutate: func(b *builder.LineBuilder) { b.Name = "" }, errIs: errs.ErrProductRequired},
		{name: "zero quantity", mutate: func(b *builder.LineBuilder) { b.Quantity = 0 }, errIs: errs.ErrInvalidQuantity},
		{name: "empty size and color", mutate: func(b *builder.LineBuilder) { b.Size, b.Color = "", "" }},
		{name: "zero price", mutate: func(b *builder.LineBuilder) { b.Price = decimal.Zero }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewLineBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
		})
	}

	t.Run("negative price", func(t *testing.T) {
		_, err := builder.NewLineBuilder().WithPrice("-1").BuildDomain()
		require.Error(t, err)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}

func TestCart_Add(t *testing.T) {
	t.Run("same variant twice merges quantities", func(t *testing.T) {
		c := cart.New("s1", time.Now())
		b := builder.NewLineBuilder()

		require.NoError(t, c.Add(b.WithQuantity(2).MustBuild()))
		require.NoError(t, c.Add(b.WithQuantity(3).MustBuild()))

		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 5, c.Lines()[0].Quantity())
		assert.Equal(t, 5, c.ItemCount())
	})

	t.Run("merge keeps the original snapshot", func(t *testing.T) {
		c := cart.New("s1", time.Now())
		b := builder.NewLineBuilder()

		require.NoError(t, c.Add(b.MustBuild()))
		require.NoError(t, c.Add(b.WithPrice("99.90").WithName("Renamed").MustBuild()))

		line := c.Lines()[0]
		assert.Equal(t, "Biquíni Cortininha", line.Name())
		assert.True(t, decimal.RequireFromString("10.00").Equal(line.Price()))
		assert.Equal(t, 2, line.Quantity())
	})

	t.Run("different size creates distinct lines", func(t *testing.T) {
		c := cart.New("s1", time.Now())
		b := builder.NewLineBuilder()

		require.NoError(t, c.Add(b.WithSize("P").MustBuild()))
		require.NoError(t, c.Add(b.WithSize("G").MustBuild()))

		assert.Len(t, c.Lines(), 2)
		assert.Equal(t, 2, c.ItemCount())
	})

	t.Run("different color creates distinct lines", func(t *testing.T) {
		c := cart.New("s1", time.Now())
		b := builder.NewLineBuilder()

		require.NoError(t, c.Add(b.WithColor("Azul").MustBuild()))
		require.NoError(t, c.Add(b.WithColor("Preto").MustBuild()))

		assert.Len(t, c.Lines(), 2)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	keep := builder.NewLineBuilder().WithQuantity(1)
	target := builder.NewLineBuilder().WithQuantity(4)

	for _, q := range []int{0, -3} {
		c := builder.NewCart("s1", 1, keep.MustBuild(), target.MustBuild())
		require.NoError(t, c.SetQuantity(target.Key(), q))
		assert.Len(t, c.Lines(), 1, "quantity %d removes the line", q)
		assert.Equal(t, 1, c.ItemCount())
	}

	c := builder.NewCart("s1", 1, keep.MustBuild(), target.MustBuild())
	require.NoError(t, c.SetQuantity(target.Key(), 7))
	line, ok := c.Find(target.Key())
	require.True(t, ok)
	assert.Equal(t, 7, line.Quantity())
	assert.Equal(t, 8, c.ItemCount())

	err := c.SetQuantity(cart.NewVariantKey(target.ProductID, "XG", target.Color), 1)
	assert.ErrorIs(t, err, errs.ErrLineNotFound)
}

func TestCart_Remove(t *testing.T) {
	b := builder.NewLineBuilder()
	c := builder.NewCart("s1", 1, b.MustBuild())

	assert.False(t, c.Remove(cart.NewVariantKey("missing", "", "")))
	assert.Len(t, c.Lines(), 1)

	assert.True(t, c.Remove(b.Key()))
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
}

func TestCart_SubtotalAndDrain(t *testing.T) {
	c := builder.NewCart("s1", 3,
		builder.NewLineBuilder().WithPrice("10.00").WithQuantity(2).MustBuild(),
		builder.NewLineBuilder().WithPrice("5.00").WithQuantity(1).MustBuild(),
	)

	assert.Equal(t, "25.00", c.Subtotal().StringFixed(2))

	c.Drain()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, "s1", c.SessionID())
	assert.Equal(t, int64(3), c.Version())
}

func TestCart_AddRejectsQuantityOverflow(t *testing.T) {
	b := builder.NewLineBuilder().WithQuantity(cart.MaxLineQuantity)
	c := builder.NewCart("s1", 1, b.MustBuild())

	err := c.Add(b.WithQuantity(1).MustBuild())

	assert.ErrorIs(t, err, errs.ErrQuantityTooLarge)
	line, ok := c.Find(b.Key())
	require.True(t, ok)
	assert.Equal(t, cart.MaxLineQuantity, line.Quantity())

	_, err = builder.NewLineBuilder().WithQuantity(cart.MaxLineQuantity + 1).BuildDomain()
	assert.ErrorIs(t, err, errs.ErrQuantityTooLarge)

	assert.ErrorIs(t, c.SetQuantity(b.Key(), cart.MaxLineQuantity+1), errs.ErrQuantityTooLarge)
}

func TestVariantKey_AcceptsEveryUUIDSpelling(t *testing.T) {
	const id = "3f2b8c1e-4a5d-4e6f-8a7b-9c0d1e2f3a4b"
	b := builder.NewLineBuilder().WithProductID(id)

	spellings := []string{
		"3F2B8C1E-4A5D-4E6F-8A7B-9C0D1E2F3A4B",
		"{3f2b8c1e-4a5d-4e6f-8a7b-9c0d1e2f3a4b}",
		"urn:uuid:3f2b8c1e-4a5d-4e6f-8a7b-9c0d1e2f3a4b",
		" " + id + " ",
	}
	for _, s := range spellings {
		t.Run(s, func(t *testing.T) {
			key := cart.NewVariantKey(s, b.Size, b.Color)
			assert.Equal(t, id, key.ProductID)

			c := builder.NewCart("s1", 1, b.MustBuild())
			require.NoError(t, c.SetQuantity(key, 3))
			assert.Equal(t, 3, c.ItemCount())
			assert.True(t, c.Remove(key))
		})
	}

	upper := builder.NewLineBuilder().WithProductID(strings.ToUpper(id)).MustBuild()
	assert.Equal(t, id, upper.ProductID())
}
