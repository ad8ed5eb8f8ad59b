package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"freightline/backend/internal/schema"
)

// DefaultShipmentStatus is applied when a shipment is created without an
// explicit status. Status is free-form text, not an enumerated state machine.
const DefaultShipmentStatus = "In Transit"

// ShipmentEvent is one entry in a shipment's tracking history. Events are
// embedded in their shipment and have no identity of their own.
type ShipmentEvent struct {
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Description string    `bson:"description" json:"description"`
}

// Shipment is a stored shipment document in the "shipment" collection.
// tracking_number is intended to be unique but no index enforces it; lookups
// return the first match.
type Shipment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TrackingNumber string             `bson:"tracking_number" json:"tracking_number"`
	Status         string             `bson:"status" json:"status"`
	Origin         string             `bson:"origin" json:"origin"`
	Destination    string             `bson:"destination" json:"destination"`
	Eta            time.Time          `bson:"eta" json:"eta"`
	LastUpdate     time.Time          `bson:"last_update" json:"last_update"`
	Events         []ShipmentEvent    `bson:"events" json:"events"`
}

// NewShipment is the creation payload for POST /api/shipments.
type NewShipment struct {
	TrackingNumber string     `json:"tracking_number"`
	Origin         string     `json:"origin"`
	Destination    string     `json:"destination"`
	Status         string     `json:"status,omitempty"`
	Eta            *time.Time `json:"eta,omitempty"`
}

// Rules declares the validation constraints for shipment creation.
func (p *NewShipment) Rules() []schema.Rule {
	return []schema.Rule{
		schema.Required("tracking_number", p.TrackingNumber),
		schema.Required("origin", p.Origin),
		schema.Required("destination", p.Destination),
	}
}

// Build constructs the full shipment document from the payload: status and
// eta fall back to their defaults and a single creation event is synthesized
// at the origin.
func (p *NewShipment) Build(now time.Time) *Shipment {
	status := p.Status
	if status == "" {
		status = DefaultShipmentStatus
	}
	eta := now
	if p.Eta != nil {
		eta = *p.Eta
	}
	return &Shipment{
		TrackingNumber: p.TrackingNumber,
		Status:         status,
		Origin:         p.Origin,
		Destination:    p.Destination,
		Eta:            eta,
		LastUpdate:     now,
		Events: []ShipmentEvent{
			{
				Timestamp:   now,
				Location:    p.Origin,
				Description: "Shipment created",
			},
		},
	}
}
