package document

import (
	"strings"

	"github.com/globalway/tracking-service/internal/api/metrics"
	"github.com/globalway/tracking-service/internal/core/domain"
)

// Kind selects which document to generate.
type Kind string

const (
	KindDetails Kind = "details"
	KindInvoice Kind = "invoice"
)

// ValidKind reports whether k names a known document kind.
func ValidKind(k Kind) bool {
	return k == KindDetails || k == KindInvoice
}

// RemittanceDetails are the bank-transfer instructions printed on unpaid
// invoices. They are content policy, not computed data, so they come from
// configuration rather than the shipment record.
type RemittanceDetails struct {
	BankName      string
	AccountName   string
	AccountNumber string
	SwiftCode     string
}

// Generator produces printable documents from shipment records.
type Generator struct {
	remittance RemittanceDetails
}

// NewGenerator builds a Generator with the given remittance details.
func NewGenerator(remittance RemittanceDetails) *Generator {
	return &Generator{remittance: remittance}
}

// Generate renders the requested document kind for rec as a complete,
// self-contained HTML page.
//
// A record without a tracking number refuses generation with
// domain.ErrMissingTrackingNumber: a document with no identifier is worse
// than no document. Every other absent field degrades to a placeholder or
// drops its section.
func (g *Generator) Generate(rec *domain.ShipmentRecord, kind Kind) (string, error) {
	if rec == nil || strings.TrimSpace(rec.TrackingNumber) == "" {
		return "", domain.ErrMissingTrackingNumber
	}

	var doc string
	switch kind {
	case KindDetails:
		doc = g.details(rec)
	case KindInvoice:
		doc = g.invoice(rec)
	default:
		return "", domain.ErrUnknownDocumentKind
	}

	metrics.DocumentsGeneratedTotal.WithLabelValues(string(kind)).Inc()
	return doc, nil
}
