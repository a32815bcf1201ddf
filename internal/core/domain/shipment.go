package domain

import "errors"

// ShipmentStatus represents the lifecycle state of a shipment.
type ShipmentStatus string

const (
	StatusProcessing ShipmentStatus = "processing"
	StatusInTransit  ShipmentStatus = "in-transit"
	StatusDelivered  ShipmentStatus = "delivered"
)

// statusOrdinal fixes the three-stage lifecycle ordering. The status is a
// read-only projection supplied by the upstream tracking source; this service
// never executes transitions, it only ranks them.
var statusOrdinal = map[ShipmentStatus]int{
	StatusProcessing: 0,
	StatusInTransit:  1,
	StatusDelivered:  2,
}

var ErrInvalidStatus = errors.New("invalid shipment status")
var ErrShipmentNotFound = errors.New("shipment not found")
var ErrMissingTrackingNumber = errors.New("missing tracking number")
var ErrUnknownDocumentKind = errors.New("unknown document kind")
var ErrShareUnavailable = errors.New("share surface unavailable")

// Ordinal returns the zero-based position of s in the lifecycle, or
// ErrInvalidStatus when s is not one of the three known statuses. An unknown
// status is a data-contract violation from the upstream source; it is never
// silently defaulted because progress and document rendering depend on it.
func (s ShipmentStatus) Ordinal() (int, error) {
	ord, ok := statusOrdinal[s]
	if !ok {
		return 0, ErrInvalidStatus
	}
	return ord, nil
}

// Valid reports whether s is one of the three known lifecycle statuses.
func (s ShipmentStatus) Valid() bool {
	_, ok := statusOrdinal[s]
	return ok
}

// TrackingEvent is one historical waypoint of a shipment's journey.
// History is ordered most-recent-first as supplied by the tracking source.
type TrackingEvent struct {
	Date        string `json:"date" bson:"date"`
	Status      string `json:"status" bson:"status"`
	Location    string `json:"location" bson:"location"`
	Description string `json:"description" bson:"description"`
}

// Party is a sender or receiver. Every field is optional; an all-empty Party
// should simply be left nil on the record.
type Party struct {
	Name         string `json:"name,omitempty" bson:"name,omitempty"`
	Address      string `json:"address,omitempty" bson:"address,omitempty"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
	Instructions string `json:"instructions,omitempty" bson:"instructions,omitempty"`
}

// PaymentInfo carries the commercial details of a shipment. The five monetary
// fields arrive from the upstream source as either numbers or numeric strings
// (and are frequently absent altogether), so they are kept loosely typed here
// and coerced at the point of use; see service.AmountOf.
type PaymentInfo struct {
	Shipping       any    `json:"shipping,omitempty" bson:"shipping,omitempty"`
	Insurance      any    `json:"insurance,omitempty" bson:"insurance,omitempty"`
	CustomsDuties  any    `json:"customs_duties,omitempty" bson:"customs_duties,omitempty"`
	Taxes          any    `json:"taxes,omitempty" bson:"taxes,omitempty"`
	AdditionalFees any    `json:"additional_fees,omitempty" bson:"additional_fees,omitempty"`
	Currency       string `json:"currency,omitempty" bson:"currency,omitempty"`
	Status         string `json:"status,omitempty" bson:"status,omitempty"`
	Method         string `json:"method,omitempty" bson:"method,omitempty"`
	Date           string `json:"date,omitempty" bson:"date,omitempty"`
	DueDate        string `json:"due_date,omitempty" bson:"due_date,omitempty"`
	InvoiceNumber  string `json:"invoice_number,omitempty" bson:"invoice_number,omitempty"`
	Reference      string `json:"reference,omitempty" bson:"reference,omitempty"`
	CardType       string `json:"card_type,omitempty" bson:"card_type,omitempty"`
	AccountNumber  string `json:"account_number,omitempty" bson:"account_number,omitempty"`
}

// CustomsStatus represents the clearance state of a shipment's customs entry.
type CustomsStatus string

const (
	CustomsCleared    CustomsStatus = "cleared"
	CustomsInProgress CustomsStatus = "in-progress"
	CustomsPending    CustomsStatus = "pending"
	CustomsHeld       CustomsStatus = "held"
)

// CustomsDocument is a single document in a customs declaration checklist.
type CustomsDocument struct {
	Name     string `json:"name" bson:"name"`
	Received bool   `json:"received" bson:"received"`
}

// CustomsInfo carries customs clearance details when the shipment crosses a
// border; it is absent for domestic shipments.
type CustomsInfo struct {
	Status           CustomsStatus     `json:"status" bson:"status"`
	EntryNumber      string            `json:"entry_number,omitempty" bson:"entry_number,omitempty"`
	Declaration      string            `json:"declaration,omitempty" bson:"declaration,omitempty"`
	ClearedDate      string            `json:"cleared_date,omitempty" bson:"cleared_date,omitempty"`
	InspectionStatus string            `json:"inspection_status,omitempty" bson:"inspection_status,omitempty"`
	Notes            string            `json:"notes,omitempty" bson:"notes,omitempty"`
	Documents        []CustomsDocument `json:"documents,omitempty" bson:"documents,omitempty"`
}

// ShipmentRecord is the externally supplied description of one package's
// journey. It is read-only from this service's perspective: coordinates and
// documents are derived from it per view session, never written back.
//
// Which optional fields are populated depends on Status: a delivered shipment
// carries DeliveredDate/SignedBy, an in-flight one carries EstimatedDelivery
// and usually CurrentLocation. The core tolerates either set being absent.
type ShipmentRecord struct {
	TrackingNumber    string          `json:"tracking_number" bson:"tracking_number"`
	Status            ShipmentStatus  `json:"status" bson:"status"`
	Service           string          `json:"service" bson:"service"`
	Weight            string          `json:"weight" bson:"weight"`
	Dimensions        string          `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	Origin            string          `json:"origin" bson:"origin"`
	Destination       string          `json:"destination" bson:"destination"`
	CurrentLocation   string          `json:"current_location,omitempty" bson:"current_location,omitempty"`
	EstimatedDelivery string          `json:"estimated_delivery,omitempty" bson:"estimated_delivery,omitempty"`
	DeliveredDate     string          `json:"delivered_date,omitempty" bson:"delivered_date,omitempty"`
	SignedBy          string          `json:"signed_by,omitempty" bson:"signed_by,omitempty"`
	CO2Saved          string          `json:"co2_saved,omitempty" bson:"co2_saved,omitempty"`
	History           []TrackingEvent `json:"history" bson:"history"`
	Sender            *Party          `json:"sender,omitempty" bson:"sender,omitempty"`
	Receiver          *Party          `json:"receiver,omitempty" bson:"receiver,omitempty"`
	Payment           *PaymentInfo    `json:"payment,omitempty" bson:"payment,omitempty"`
	Customs           *CustomsInfo    `json:"customs,omitempty" bson:"customs,omitempty"`
}
