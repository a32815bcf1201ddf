package ports

import (
	"context"

	"github.com/globalway/tracking-service/internal/core/domain"
)

// Stage is one step of the three-stage progress indicator.
type Stage struct {
	Label     string
	Completed bool
}

// Progress is the visual completion state derived from a shipment's status.
type Progress struct {
	Percent int
	Stages  []Stage
}

// PaymentSummary is the coerced monetary view of a shipment's payment block.
type PaymentSummary struct {
	Total          float64
	FormattedTotal string
	Currency       string
	Status         string
}

// TrackingDetail is the full view returned for one tracking number: the raw
// record plus everything derived synchronously from it.
type TrackingDetail struct {
	Record   *domain.ShipmentRecord
	Progress Progress
	Payment  PaymentSummary
}

// ResolutionState distinguishes "still loading" from "loaded with gaps" when
// rendering the map.
type ResolutionState string

const (
	ResolutionIdle      ResolutionState = "idle"
	ResolutionResolving ResolutionState = "resolving"
	ResolutionReady     ResolutionState = "ready"
)

// MapView is the coordinate set for one shipment plus its resolution state.
// Coordinates is nil until State is ResolutionReady.
type MapView struct {
	TrackingNumber string
	State          ResolutionState
	Coordinates    *domain.ResolvedCoordinates
}

// ShareLink is a short-lived public link to a shipment's tracking view.
type ShareLink struct {
	Token string
	URL   string
}

// TrackingService defines the self-service tracking use cases.
type TrackingService interface {
	// GetTracking returns the record and its derived progress/payment views.
	// Returns domain.ErrShipmentNotFound or domain.ErrInvalidStatus.
	GetTracking(ctx context.Context, trackingNumber string) (*TrackingDetail, error)
	// GetMap returns the coordinate resolution state for a shipment,
	// starting a resolution if none is in flight for it yet.
	GetMap(ctx context.Context, trackingNumber string) (*MapView, error)
	// CreateShareLink mints a shareable URL for the shipment.
	CreateShareLink(ctx context.Context, trackingNumber string) (*ShareLink, error)
	// ResolveShareToken maps a share token back to its tracking number.
	ResolveShareToken(ctx context.Context, token string) (string, error)
}
