package models

import (
	"freightline/backend/internal/schema"
)

// QuoteRequest is a freight quote enquiry submitted through the public form.
// It is validated, persisted once into the "quoterequest" collection and
// never read back through this API.
type QuoteRequest struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Company string `bson:"company,omitempty" json:"company,omitempty"`

	CargoType    string   `bson:"cargo_type" json:"cargo_type"`
	WeightKg     *float64 `bson:"weight_kg,omitempty" json:"weight_kg,omitempty"`
	DimensionsCm string   `bson:"dimensions_cm,omitempty" json:"dimensions_cm,omitempty"`

	PickupLocation        string `bson:"pickup_location" json:"pickup_location"`
	DeliveryLocation      string `bson:"delivery_location" json:"delivery_location"`
	PreferredPickupDate   string `bson:"preferred_pickup_date,omitempty" json:"preferred_pickup_date,omitempty"`
	PreferredDeliveryDate string `bson:"preferred_delivery_date,omitempty" json:"preferred_delivery_date,omitempty"`

	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Rules declares the validation constraints for a quote request. Preferred
// dates are free-form text (YYYY-MM-DD by convention, not checked as real
// calendar dates).
func (q *QuoteRequest) Rules() []schema.Rule {
	return []schema.Rule{
		schema.Required("name", q.Name),
		schema.Email("email", q.Email),
		schema.Required("cargo_type", q.CargoType),
		schema.NonNegative("weight_kg", q.WeightKg),
		schema.Required("pickup_location", q.PickupLocation),
		schema.Required("delivery_location", q.DeliveryLocation),
	}
}
