package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func rawShipmentDoc(id primitive.ObjectID, eta, lastUpdate, eventTs time.Time) bson.M {
	return bson.M{
		"_id":             id,
		"tracking_number": "TRK1",
		"status":          "In Transit",
		"origin":          "NYC",
		"destination":     "LA",
		"eta":             primitive.NewDateTimeFromTime(eta),
		"last_update":     primitive.NewDateTimeFromTime(lastUpdate),
		"events": primitive.A{
			bson.M{
				"timestamp":   primitive.NewDateTimeFromTime(eventTs),
				"location":    "NYC",
				"description": "Shipment created",
			},
		},
	}
}

func TestNormalizeShipmentDocument_ConvertsNativeValues(t *testing.T) {
	id := primitive.NewObjectID()
	eta := time.Date(2026, 4, 2, 18, 0, 0, 0, time.UTC)
	lastUpdate := time.Date(2026, 4, 1, 12, 30, 0, 0, time.UTC)
	eventTs := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	doc := NormalizeShipmentDocument(rawShipmentDoc(id, eta, lastUpdate, eventTs))

	assert.Equal(t, id.Hex(), doc["_id"])
	assert.Equal(t, "2026-04-02T18:00:00Z", doc["eta"])
	assert.Equal(t, "2026-04-01T12:30:00Z", doc["last_update"])

	events, ok := doc["events"].(primitive.A)
	require.True(t, ok)
	require.Len(t, events, 1)
	event := events[0].(bson.M)
	assert.Equal(t, "2026-04-01T12:00:00Z", event["timestamp"])
	assert.Equal(t, "NYC", event["location"])
}

func TestNormalizeShipmentDocument_Idempotent(t *testing.T) {
	id := primitive.NewObjectID()
	now := time.Now().UTC()

	// Normalization mutates in place, so compare independently built inputs:
	// one normalized once against one normalized twice.
	once := NormalizeShipmentDocument(rawShipmentDoc(id, now, now, now))
	twice := NormalizeShipmentDocument(NormalizeShipmentDocument(rawShipmentDoc(id, now, now, now)))

	assert.Equal(t, once, twice)
	assert.Equal(t, id.Hex(), twice["_id"])
	_, isString := twice["eta"].(string)
	assert.True(t, isString)
}

func TestNormalizeShipmentDocument_MissingOptionalFields(t *testing.T) {
	// eta absent, events absent: nothing to convert, nothing should be added.
	doc := NormalizeShipmentDocument(bson.M{
		"_id":             primitive.NewObjectID(),
		"tracking_number": "TRK9",
		"last_update":     nil,
	})

	_, hasEta := doc["eta"]
	assert.False(t, hasEta)
	assert.Nil(t, doc["last_update"])
	_, hasEvents := doc["events"]
	assert.False(t, hasEvents)
}

func TestNormalizeShipmentDocument_JSONDecodedShapes(t *testing.T) {
	// A document that went through a JSON round-trip uses plain maps and
	// slices instead of driver types. Normalization must leave it intact.
	doc := bson.M{
		"_id": "66f2a1b4c3d2e1f001234567",
		"eta": "2026-04-02T18:00:00Z",
		"events": []interface{}{
			map[string]interface{}{"timestamp": "2026-04-01T12:00:00Z", "description": "Shipment created"},
		},
	}

	out := NormalizeShipmentDocument(doc)

	assert.Equal(t, "66f2a1b4c3d2e1f001234567", out["_id"])
	assert.Equal(t, "2026-04-02T18:00:00Z", out["eta"])
	event := out["events"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "2026-04-01T12:00:00Z", event["timestamp"])
}

func TestNormalizeShipmentDocument_TimeTimeValues(t *testing.T) {
	// Documents built in-process (not decoded from the driver) carry
	// time.Time values directly.
	eta := time.Date(2026, 5, 1, 8, 0, 0, 0, time.FixedZone("CET", 3600))
	doc := NormalizeShipmentDocument(bson.M{"eta": eta})

	assert.Equal(t, "2026-05-01T07:00:00Z", doc["eta"], "timestamps are normalized to UTC")
}
