//go:build unit

package order_test

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/order"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settings = order.MessageSettings{StoreName: "VB Swimwear", PixDiscountPercent: 10}

func sampleCart() *cart.Cart {
	return builder.NewCart("sess-1", 2,
		builder.NewLineBuilder().WithName("Biquíni Asa Delta").WithPrice("10.00").WithQuantity(2).WithSize("M").WithColor("Azul").MustBuild(),
		builder.NewLineBuilder().WithName("Canga").WithPrice("5.00").WithQuantity(1).WithSize("").WithColor("").MustBuild(),
	)
}

func TestNewCustomer(t *testing.T) {
	c, err := order.NewCustomer("  Maria  ", " 71 99999-0000 ", " maria@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "Maria", c.Name())
	assert.Equal(t, "71 99999-0000", c.Phone())
	assert.Equal(t, "maria@example.com", c.Email())

	_, err = order.NewCustomer("   ", "123", "")
	assert.ErrorIs(t, err, errs.ErrCustomerNameRequired)

	_, err = order.NewCustomer("Maria", "\t", "")
	assert.ErrorIs(t, err, errs.ErrCustomerPhoneRequired)
}

func TestNewOrder(t *testing.T) {
	customer, err := order.NewCustomer("Maria", "71999990000", "")
	require.NoError(t, err)

	t.Run("snapshots cart lines and subtotal", func(t *testing.T) {
		c := sampleCart()
		o, err := order.NewOrder("VB-1-ABCD", customer, c, "  entregar à tarde ", time.Now())
		require.NoError(t, err)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, "25.00", o.Subtotal().StringFixed(2))
		assert.Equal(t, "entregar à tarde", o.Notes())
		assert.Equal(t, "sess-1", o.SessionID())
		require.Len(t, o.Lines(), 2)

		c.Drain()
		assert.Len(t, o.Lines(), 2, "draining the cart must not affect the order")
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		_, err := order.NewOrder("VB-1-ABCD", customer, cart.New("s", time.Now()), "", time.Now())
		assert.ErrorIs(t, err, errs.ErrCartEmpty)

		_, err = order.NewOrder("VB-1-ABCD", customer, nil, "", time.Now())
		assert.ErrorIs(t, err, errs.ErrCartEmpty)
	})
}

func TestNumberGenerator(t *testing.T) {
	pattern := regexp.MustCompile(`^VB-\d+-[0-9A-Z]{4}$`)
	clk := clock.NewMockClock(time.Unix(1717171717, 0))
	gen := order.NewNumberGenerator("VB", clk)

	for range 200 {
		n, err := gen.Next()
		require.NoError(t, err)
		assert.Regexp(t, pattern, n)
		assert.Contains(t, n, "-1717171717-")
	}
}

func TestNumberGenerator_PadsShortSuffix(t *testing.T) {
	gen := order.NewNumberGeneratorWithReader("VB", clock.NewMockClock(time.Unix(10, 0)), bytes.NewReader(make([]byte, 64)))

	n, err := gen.Next()
	require.NoError(t, err)
	assert.Equal(t, "VB-10-0000", n)
}

func TestBuildMessage(t *testing.T) {
	customer, err := order.NewCustomer("Maria Souza", "71999990000", "maria@example.com")
	require.NoError(t, err)
	o, err := order.NewOrder("VB-1717171717-X1Z9", customer, sampleCart(), "Presente", time.Now())
	require.NoError(t, err)

	want := "*Novo Pedido - VB Swimwear*\n" +
		"Pedido: #VB-1717171717-X1Z9\n\n" +
		"*Cliente:* Maria Souza\n" +
		"*Telefone:* 71999990000\n" +
		"*Email:* maria@example.com\n" +
		"\n*Itens:*\n" +
		"2x Biquíni Asa Delta - Tam: M | Cor: Azul - R$ 20,00\n" +
		"1x Canga - R$ 5,00\n" +
		"\n*Subtotal:* R$ 25,00" +
		"\n*Com Pix (10% off):* R$ 22,50" +
		"\n\n*Observações:* Presente"

	if diff := cmp.Diff(want, order.BuildMessage(settings, o)); diff != "" {
		t.Errorf("message mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMessage_OptionalFieldsOmitted(t *testing.T) {
	customer, err := order.NewCustomer("Ana", "7100", "")
	require.NoError(t, err)
	o, err := order.NewOrder("VB-1-AAAA", customer, sampleCart(), "", time.Now())
	require.NoError(t, err)

	msg := order.BuildMessage(settings, o)
	assert.NotContains(t, msg, "*Email:*")
	assert.NotContains(t, msg, "Observações")
	assert.Contains(t, msg, "1x Canga - R$ 5,00\n")
}

func TestFormatBRL(t *testing.T) {
	o := order.PixPrice(sampleCart().Subtotal(), 10)
	assert.Equal(t, "22,50", order.FormatBRL(o))
	assert.Equal(t, "0,00", order.FormatBRL(order.PixPrice(cart.New("s", time.Now()).Subtotal(), 10)))
}

func TestDeepLink(t *testing.T) {
	link := order.DeepLink("wa.me", "5571991426930", "*Novo Pedido*\nR$ 25,00 (Pix)!")
	assert.Equal(t,
		"https://wa.me/5571991426930?text=*Novo%20Pedido*%0AR%24%2025%2C00%20(Pix)!",
		link,
	)
}
