// Package document builds self-contained printable HTML documents from a
// shipment record: a tracking details report and a commercial invoice. Both
// share letterhead, footer, and section primitives so the conditional-field
// handling lives in exactly one place per field.
package document

import (
	"fmt"
	"html"
	"strings"
)

// placeholder is rendered for optional fields that are absent. Missing data
// is shown explicitly, never as a blank cell.
const placeholder = "N/A"

// orNA returns the escaped value, or the placeholder when it is empty.
func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return html.EscapeString(v)
}

// esc escapes a value for HTML interpolation.
func esc(v string) string {
	return html.EscapeString(v)
}

// docShell wraps body content into a complete standalone HTML page with
// embedded print styles. The output needs no further assembly: it can be
// written straight to a print surface.
func docShell(title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<meta charset=\"utf-8\">\n<title>%s</title>\n", esc(title))
	b.WriteString("<style>\n")
	b.WriteString(`body { font-family: Helvetica, Arial, sans-serif; color: #1a1a1a; margin: 40px; }
h1 { font-size: 22px; margin: 0; }
h2 { font-size: 14px; text-transform: uppercase; letter-spacing: 1px; border-bottom: 1px solid #ccc; padding-bottom: 4px; margin: 28px 0 10px; }
table { width: 100%; border-collapse: collapse; margin: 8px 0; }
th, td { text-align: left; padding: 6px 8px; font-size: 13px; }
thead th { background: #f3f4f6; border-bottom: 1px solid #d1d5db; }
tbody td { border-bottom: 1px solid #eee; }
.letterhead { display: flex; justify-content: space-between; border-bottom: 3px solid #0f4c81; padding-bottom: 12px; }
.letterhead .tagline { color: #6b7280; font-size: 12px; }
.meta { font-size: 13px; color: #374151; text-align: right; }
.row { display: flex; }
.row .label { width: 180px; color: #6b7280; font-size: 13px; padding: 3px 0; }
.row .value { font-size: 13px; padding: 3px 0; }
.columns { display: flex; gap: 40px; }
.columns > div { flex: 1; }
.notice { background: #fffbeb; border: 1px solid #fcd34d; padding: 12px; font-size: 13px; margin: 16px 0; }
.total td { font-weight: bold; border-top: 2px solid #0f4c81; }
.footer { margin-top: 40px; border-top: 1px solid #ccc; padding-top: 10px; font-size: 11px; color: #9ca3af; }
@media print { body { margin: 20px; } }
`)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// letterhead renders the company header shared by both document kinds.
func letterhead(docTitle, trackingNumber string) string {
	var b strings.Builder
	b.WriteString(`<div class="letterhead">`)
	b.WriteString(`<div><h1>GlobalWay Logistics</h1><div class="tagline">Worldwide freight, door to door</div></div>`)
	fmt.Fprintf(&b, `<div class="meta">%s<br>Tracking #: <strong>%s</strong></div>`, esc(docTitle), esc(trackingNumber))
	b.WriteString(`</div>`)
	return b.String()
}

// footer renders the shared document footer.
func footer() string {
	return `<div class="footer">GlobalWay Logistics &middot; www.globalway-logistics.example &middot; support@globalway-logistics.example<br>This document was generated electronically and is valid without signature.</div>`
}

// section wraps rows or tables under a titled heading.
func section(title, inner string) string {
	return fmt.Sprintf("<h2>%s</h2>\n%s", esc(title), inner)
}

// labeledRow renders a label/value pair. The value is assumed escaped.
func labeledRow(label, value string) string {
	return fmt.Sprintf(`<div class="row"><div class="label">%s</div><div class="value">%s</div></div>`, esc(label), value)
}

// partyBlock renders a sender or receiver column; absent fields fall back to
// the placeholder so the block keeps its shape.
func partyBlock(heading, name, address, phone, email, instructions string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div><h2>%s</h2>\n", esc(heading))
	b.WriteString(labeledRow("Name", orNA(name)))
	b.WriteString(labeledRow("Address", orNA(address)))
	b.WriteString(labeledRow("Phone", orNA(phone)))
	b.WriteString(labeledRow("Email", orNA(email)))
	if strings.TrimSpace(instructions) != "" {
		b.WriteString(labeledRow("Instructions", esc(instructions)))
	}
	b.WriteString("</div>")
	return b.String()
}
