package ports

import (
	"context"

	"github.com/globalway/tracking-service/internal/core/domain"
)

// ShipmentRepository is the tracking lookup source. It is read-only: shipment
// records are produced upstream and this service only consumes them.
type ShipmentRepository interface {
	// FindByTrackingNumber retrieves a shipment record, or
	// domain.ErrShipmentNotFound when no record matches.
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error)
}
