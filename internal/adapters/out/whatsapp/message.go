// Package whatsapp hands submitted orders to the store operator: the order is
// journaled, rendered as a Portuguese WhatsApp message and returned as a
// wa.me deep link for the store's number.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/order"
)

const separator = "------------------"

// RenderMessage renders the operator message of o.
//
// Example output (abridged):
//
//	*Novo Pedido*
//	------------------
//	• 2x Pilsen Cristal 1L (R$ 16.00)
//
//	*Sugestões aceitas*
//	• 1x Chopp de Vinho Branco 1L (R$ 20.00)
//
//	Subtotal: R$ 52.00
//	Frete: R$ 10.00
//	*Total Aprox.: R$ 62.00*
//	...
//	Gostaria de confirmar o pedido.
func RenderMessage(o *order.Order) string {
	var b strings.Builder

	b.WriteString("*Novo Pedido*\n")
	b.WriteString(separator + "\n")
	writeLines(&b, o.RegularLines())

	if upsell := o.UpsellLines(); len(upsell) > 0 {
		b.WriteString("\n*Sugestões aceitas*\n")
		writeLines(&b, upsell)
	}

	b.WriteString("\n")
	if !o.Freight().IsZero() {
		fmt.Fprintf(&b, "Subtotal: R$ %s\n", o.Subtotal())
		fmt.Fprintf(&b, "Frete: R$ %s\n", o.Freight())
	}
	fmt.Fprintf(&b, "*Total Aprox.: R$ %s*", o.Total())

	writeCustomer(&b, o)
	writeFulfillment(&b, o.Fulfillment())

	b.WriteString("\n\n" + separator + "\nGostaria de confirmar o pedido.")
	return b.String()
}

// Link builds the wa.me deep link that opens a chat with number and message prefilled.
func Link(number, message string) string {
	// QueryEscape encodes spaces as '+', which WhatsApp shows literally.
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, text)
}

func writeLines(b *strings.Builder, lines []order.Line) {
	for _, l := range lines {
		fmt.Fprintf(b, "• %dx %s (R$ %s)\n", l.Quantity, l.Name, l.UnitPrice())
		if l.Extras.RentTonel {
			b.WriteString("  - Tonel: Sim\n")
		}
		if n := l.Extras.Mugs.Quantity(); n > 0 {
			fmt.Fprintf(b, "  - Canecas: %d un.\n", n)
		}
		if l.Extras.RequestMoreCupsQuote {
			b.WriteString("  - Orçamento Copos: Sim\n")
		}
	}
}

func writeCustomer(b *strings.Builder, o *order.Order) {
	c := o.Customer()

	b.WriteString("\n\n👤 *Dados do Cliente*\n" + separator + "\n")
	fmt.Fprintf(b, "Nome: %s\nTelefone: %s\n", c.Name, c.Phone)
	if c.Type == checkout.NewCustomer {
		b.WriteString("Cliente: Novo\n")
		fmt.Fprintf(b, "CPF: %s\nNascimento: %s\n", c.GovernmentID, c.BirthDate)
		if c.Residential != nil {
			fmt.Fprintf(b, "Endereço residencial: %s\n", formatAddress(*c.Residential))
		}
	} else {
		b.WriteString("Cliente: Já sou cliente\n")
	}
	fmt.Fprintf(b, "📍 Unidade: %s\n", o.Location())
	fmt.Fprintf(b, "💰 Pagamento: %s", o.PaymentMethod().Label())
}

func writeFulfillment(b *strings.Builder, f order.Fulfillment) {
	switch {
	case f.Event != nil:
		e := f.Event
		b.WriteString("\n\n🎉 *Evento*\n" + separator + "\n")
		fmt.Fprintf(b, "Recebedor: %s\nEndereço: %s\nCidade: %s\nData: %s\nHorário: %s\nVoltagem: %s",
			e.ReceiverName, e.Address, e.City, e.Date, e.Time, e.Voltage)
	case f.EventDetailsDeferred:
		b.WriteString("\n\n🎉 *Evento*\n" + separator + "\nDetalhes a combinar com a loja")
	case f.Method == checkout.Pickup:
		b.WriteString("\n\n🏪 Retirada na loja")
	case f.Address != nil:
		b.WriteString("\n\n🚚 *Entrega*\n" + separator + "\n")
		fmt.Fprintf(b, "Endereço: %s", formatAddress(*f.Address))
	}
}

func formatAddress(a checkout.Address) string {
	return fmt.Sprintf("%s, %s, %s", a.Street, a.Neighborhood, a.City)
}
