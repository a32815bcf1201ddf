package document

import (
	"fmt"
	"strings"

	"github.com/globalway/tracking-service/internal/core/domain"
)

// details renders the tracking details report: shipment info, delivery info,
// sender/receiver block, and the full tracking history table.
func (g *Generator) details(rec *domain.ShipmentRecord) string {
	var b strings.Builder
	b.WriteString(letterhead("Tracking Details Report", rec.TrackingNumber))

	// Shipment info. Dimensions and CO2 only get a line when present.
	var info strings.Builder
	info.WriteString(labeledRow("Status", esc(statusLabel(rec.Status))))
	info.WriteString(labeledRow("Service", orNA(rec.Service)))
	info.WriteString(labeledRow("Weight", orNA(rec.Weight)))
	if strings.TrimSpace(rec.Dimensions) != "" {
		info.WriteString(labeledRow("Dimensions", esc(rec.Dimensions)))
	}
	info.WriteString(labeledRow("Origin", orNA(rec.Origin)))
	info.WriteString(labeledRow("Destination", orNA(rec.Destination)))
	if strings.TrimSpace(rec.CO2Saved) != "" {
		info.WriteString(labeledRow("CO2 Saved", esc(rec.CO2Saved)))
	}
	b.WriteString(section("Shipment Information", info.String()))

	// Delivery info: which lines appear is driven by status, but the
	// report tolerates the "expected" fields being absent too.
	var delivery strings.Builder
	if rec.Status == domain.StatusDelivered {
		delivery.WriteString(labeledRow("Delivered On", orNA(rec.DeliveredDate)))
		delivery.WriteString(labeledRow("Signed By", orNA(rec.SignedBy)))
	} else {
		delivery.WriteString(labeledRow("Estimated Delivery", orNA(rec.EstimatedDelivery)))
		if strings.TrimSpace(rec.CurrentLocation) != "" {
			delivery.WriteString(labeledRow("Current Location", esc(rec.CurrentLocation)))
		}
	}
	b.WriteString(section("Delivery Information", delivery.String()))

	// Sender/receiver block only when at least one party is present.
	if rec.Sender != nil || rec.Receiver != nil {
		b.WriteString(`<div class="columns">`)
		if p := rec.Sender; p != nil {
			b.WriteString(partyBlock("Sender", p.Name, p.Address, p.Phone, p.Email, p.Instructions))
		}
		if p := rec.Receiver; p != nil {
			b.WriteString(partyBlock("Receiver", p.Name, p.Address, p.Phone, p.Email, p.Instructions))
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(section("Tracking History", historyTable(rec.History)))
	b.WriteString(footer())

	return docShell("Tracking Details "+rec.TrackingNumber, b.String())
}

// historyTable renders the chronological event table, or an explicit notice
// when there is no history yet.
func historyTable(history []domain.TrackingEvent) string {
	if len(history) == 0 {
		return `<p>No tracking history available yet.</p>`
	}

	var b strings.Builder
	b.WriteString("<table>\n<thead><tr><th>Date</th><th>Status</th><th>Location</th><th>Description</th></tr></thead>\n<tbody>\n")
	for _, ev := range history {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			orNA(ev.Date), orNA(ev.Status), orNA(ev.Location), orNA(ev.Description))
	}
	b.WriteString("</tbody>\n</table>")
	return b.String()
}

// statusLabel maps the wire status to its display form.
func statusLabel(s domain.ShipmentStatus) string {
	switch s {
	case domain.StatusProcessing:
		return "Processing"
	case domain.StatusInTransit:
		return "In Transit"
	case domain.StatusDelivered:
		return "Delivered"
	default:
		return string(s)
	}
}
