package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

type MessageSettings struct {
	StoreName          string
	PixDiscountPercent int64
}

// BuildMessage renders the plain-text summary sent to the merchant.
func BuildMessage(s MessageSettings, o *Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*Novo Pedido - %s*\n", s.StoreName)
	fmt.Fprintf(&b, "Pedido: #%s\n\n", o.number)
	fmt.Fprintf(&b, "*Cliente:* %s\n", o.customer.name)
	fmt.Fprintf(&b, "*Telefone:* %s\n", o.customer.phone)
	if o.customer.email != "" {
		fmt.Fprintf(&b, "*Email:* %s\n", o.customer.email)
	}

	b.WriteString("\n*Itens:*\n")
	for _, l := range o.lines {
		var details []string
		if l.Size() != "" {
			details = append(details, "Tam: "+l.Size())
		}
		if l.Color() != "" {
			details = append(details, "Cor: "+l.Color())
		}
		detail := ""
		if len(details) > 0 {
			detail = " - " + strings.Join(details, " | ")
		}
		fmt.Fprintf(&b, "%dx %s%s - R$ %s\n", l.Quantity(), l.Name(), detail, FormatBRL(l.Total()))
	}

	fmt.Fprintf(&b, "\n*Subtotal:* R$ %s", FormatBRL(o.subtotal))
	fmt.Fprintf(&b, "\n*Com Pix (%d%% off):* R$ %s", s.PixDiscountPercent, FormatBRL(PixPrice(o.subtotal, s.PixDiscountPercent)))

	if o.notes != "" {
		fmt.Fprintf(&b, "\n\n*Observações:* %s", o.notes)
	}

	return b.String()
}

// PixPrice applies the instant-payment discount.
func PixPrice(subtotal decimal.Decimal, percent int64) decimal.Decimal {
	factor := decimal.NewFromInt(100 - percent).Div(decimal.NewFromInt(100))
	return subtotal.Mul(factor)
}

// FormatBRL renders two decimals with a comma separator.
func FormatBRL(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// DeepLink builds https://<host>/<number>?text=<message>, escaping the text
// the way browsers' encodeURIComponent does.
func DeepLink(host, number, message string) string {
	return fmt.Sprintf("https://%s/%s?text=%s", host, number, encodeComponent(message))
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
