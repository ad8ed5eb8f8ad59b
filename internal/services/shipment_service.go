package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"freightline/backend/internal/models"
)

// ErrShipmentNotFound is returned when no shipment matches a tracking number.
var ErrShipmentNotFound = errors.New("tracking number not found")

// IShipmentService defines the interface for shipment operations.
type IShipmentService interface {
	CreateShipment(ctx context.Context, payload *models.NewShipment) (string, error)
	TrackShipment(ctx context.Context, trackingNumber string) (bson.M, error)
}

const shipmentsCollection = "shipment"

// shipmentService implements IShipmentService.
type shipmentService struct {
	db *mongo.Database
}

// NewShipmentService creates a new ShipmentService.
func NewShipmentService(db *mongo.Database) IShipmentService {
	return &shipmentService{db: db}
}

// CreateShipment builds the full shipment document from the creation payload
// and persists it, returning the assigned identifier as a string.
func (s *shipmentService) CreateShipment(ctx context.Context, payload *models.NewShipment) (string, error) {
	doc := payload.Build(time.Now().UTC())
	res, err := s.db.Collection(shipmentsCollection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert shipment: %w", err)
	}
	return insertedIDString(res.InsertedID), nil
}

// TrackShipment looks up the first shipment matching the tracking number and
// returns it normalized for JSON transmission. Duplicate tracking numbers are
// possible (no unique index exists); only the first match is returned.
func (s *shipmentService) TrackShipment(ctx context.Context, trackingNumber string) (bson.M, error) {
	filter := bson.M{"tracking_number": trackingNumber}
	opts := options.Find().SetLimit(1)

	cursor, err := s.db.Collection(shipmentsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query shipment by tracking number: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode shipment document: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrShipmentNotFound
	}

	return NormalizeShipmentDocument(docs[0]), nil
}
