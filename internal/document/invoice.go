package document

import (
	"fmt"
	"strings"

	"github.com/globalway/tracking-service/internal/core/domain"
	"github.com/globalway/tracking-service/internal/core/service"
)

const invoiceTerms = "Payment is due within 30 days of the invoice date. " +
	"Late payments accrue interest at 1.5% per month. Claims regarding this " +
	"invoice must be raised in writing within 14 days of receipt. All " +
	"services are subject to the GlobalWay Logistics standard terms of carriage."

// invoice renders the commercial invoice: bill-to, invoice metadata, the
// itemized payment table, payment details, customs block, and terms.
func (g *Generator) invoice(rec *domain.ShipmentRecord) string {
	payment := rec.Payment
	currency := "USD"
	if payment != nil && payment.Currency != "" {
		currency = payment.Currency
	}

	var b strings.Builder
	b.WriteString(letterhead("Commercial Invoice", rec.TrackingNumber))

	// Invoice metadata. The number is derived from the tracking number when
	// the record does not carry one explicitly.
	var meta strings.Builder
	meta.WriteString(labeledRow("Invoice Number", esc(invoiceNumber(rec))))
	if payment != nil {
		meta.WriteString(labeledRow("Invoice Date", orNA(payment.Date)))
		meta.WriteString(labeledRow("Due Date", orNA(payment.DueDate)))
		meta.WriteString(labeledRow("Payment Status", orNA(payment.Status)))
	} else {
		meta.WriteString(labeledRow("Payment Status", placeholder))
	}
	b.WriteString(section("Invoice", meta.String()))

	// Bill-to: the receiver when known, else the sender.
	if rec.Receiver != nil || rec.Sender != nil {
		billTo := rec.Receiver
		if billTo == nil {
			billTo = rec.Sender
		}
		b.WriteString(`<div class="columns">`)
		b.WriteString(partyBlock("Bill To", billTo.Name, billTo.Address, billTo.Phone, billTo.Email, ""))
		b.WriteString(`</div>`)
	}

	// Service details line.
	var svc strings.Builder
	svc.WriteString(labeledRow("Service", orNA(rec.Service)))
	svc.WriteString(labeledRow("Weight", orNA(rec.Weight)))
	svc.WriteString(labeledRow("Route", esc(rec.Origin)+" &rarr; "+esc(rec.Destination)))
	b.WriteString(section("Service Details", svc.String()))

	b.WriteString(section("Charges", chargesTable(payment, currency)))

	// Payment details, only the populated lines.
	if payment != nil {
		var pay strings.Builder
		if payment.Method != "" {
			pay.WriteString(labeledRow("Method", esc(payment.Method)))
		}
		if payment.CardType != "" {
			pay.WriteString(labeledRow("Card Type", esc(payment.CardType)))
		}
		if payment.AccountNumber != "" {
			pay.WriteString(labeledRow("Account", esc(payment.AccountNumber)))
		}
		if payment.Reference != "" {
			pay.WriteString(labeledRow("Reference", esc(payment.Reference)))
		}
		if pay.Len() > 0 {
			b.WriteString(section("Payment Details", pay.String()))
		}
	}

	if rec.Customs != nil {
		b.WriteString(section("Customs", customsBlock(rec.Customs)))
	}

	if payment == nil || !strings.EqualFold(payment.Status, "paid") {
		b.WriteString(g.remittanceNotice())
	}

	b.WriteString(section("Terms & Conditions", "<p>"+esc(invoiceTerms)+"</p>"))
	b.WriteString(footer())

	return docShell("Invoice "+invoiceNumber(rec), b.String())
}

// invoiceNumber returns the explicit invoice number when the payment block
// carries one, and otherwise derives INV-<tracking suffix>.
func invoiceNumber(rec *domain.ShipmentRecord) string {
	if rec.Payment != nil && rec.Payment.InvoiceNumber != "" {
		return rec.Payment.InvoiceNumber
	}
	suffix := rec.TrackingNumber
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return "INV-" + suffix
}

// chargesTable renders the five itemized charges and their total. Absent or
// unparsable amounts print as zero in the invoice currency, so a partially
// populated payment block still yields a complete table.
func chargesTable(p *domain.PaymentInfo, currency string) string {
	type line struct {
		label  string
		amount any
	}
	var lines []line
	if p != nil {
		lines = []line{
			{"Shipping", p.Shipping},
			{"Insurance", p.Insurance},
			{"Customs Duties", p.CustomsDuties},
			{"Taxes", p.Taxes},
			{"Additional Fees", p.AdditionalFees},
		}
	} else {
		lines = []line{
			{"Shipping", nil},
			{"Insurance", nil},
			{"Customs Duties", nil},
			{"Taxes", nil},
			{"Additional Fees", nil},
		}
	}

	var b strings.Builder
	b.WriteString("<table>\n<thead><tr><th>Item</th><th>Amount</th></tr></thead>\n<tbody>\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>\n", esc(l.label), esc(service.FormatAmount(l.amount, currency)))
	}
	fmt.Fprintf(&b, `<tr class="total"><td>Total</td><td>%s</td></tr>`+"\n",
		esc(service.FormatAmount(service.PaymentTotal(p), currency)))
	b.WriteString("</tbody>\n</table>")
	return b.String()
}

// customsBlock renders the customs section including the declaration
// document checklist when one is present.
func customsBlock(c *domain.CustomsInfo) string {
	var b strings.Builder
	b.WriteString(labeledRow("Clearance Status", orNA(string(c.Status))))
	if c.EntryNumber != "" {
		b.WriteString(labeledRow("Entry Number", esc(c.EntryNumber)))
	}
	if c.Declaration != "" {
		b.WriteString(labeledRow("Declaration", esc(c.Declaration)))
	}
	if c.ClearedDate != "" {
		b.WriteString(labeledRow("Cleared Date", esc(c.ClearedDate)))
	}
	if c.InspectionStatus != "" {
		b.WriteString(labeledRow("Inspection", esc(c.InspectionStatus)))
	}
	if c.Notes != "" {
		b.WriteString(labeledRow("Notes", esc(c.Notes)))
	}
	if len(c.Documents) > 0 {
		b.WriteString("<table>\n<thead><tr><th>Document</th><th>Received</th></tr></thead>\n<tbody>\n")
		for _, d := range c.Documents {
			received := "No"
			if d.Received {
				received = "Yes"
			}
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>\n", orNA(d.Name), received)
		}
		b.WriteString("</tbody>\n</table>")
	}
	return b.String()
}

// remittanceNotice renders the bank-transfer instructions shown on invoices
// that are not yet paid.
func (g *Generator) remittanceNotice() string {
	var b strings.Builder
	b.WriteString(`<div class="notice"><strong>Payment Instructions</strong><br>`)
	b.WriteString("Please settle this invoice by bank transfer:<br>")
	fmt.Fprintf(&b, "Bank: %s<br>", orNA(g.remittance.BankName))
	fmt.Fprintf(&b, "Account Name: %s<br>", orNA(g.remittance.AccountName))
	fmt.Fprintf(&b, "Account Number: %s<br>", orNA(g.remittance.AccountNumber))
	fmt.Fprintf(&b, "SWIFT/BIC: %s", orNA(g.remittance.SwiftCode))
	b.WriteString(`</div>`)
	return b.String()
}
