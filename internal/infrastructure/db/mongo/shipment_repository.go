package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/globalway/tracking-service/internal/core/domain"
)

const shipmentCollection = "shipments"

// ShipmentRepository is the Mongo-backed tracking lookup source. Records are
// written by the upstream ingestion pipeline; this repository only reads.
type ShipmentRepository struct {
	collection *mongo.Collection
}

// NewShipmentRepository returns a repository bound to the shipments collection.
func NewShipmentRepository(db *mongo.Database) *ShipmentRepository {
	return &ShipmentRepository{collection: db.Collection(shipmentCollection)}
}

// FindByTrackingNumber retrieves a shipment record by its tracking number.
func (r *ShipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.ShipmentRecord, error) {
	filter := bson.M{"tracking_number": trackingNumber}

	var rec domain.ShipmentRecord
	err := r.collection.FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("find shipment %s: %w", trackingNumber, err)
	}
	return &rec, nil
}
