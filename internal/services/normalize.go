package services

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeShipmentDocument converts persistence-native values in a raw
// shipment document into JSON-safe strings: the object identifier becomes its
// hex form and native timestamps (top-level eta/last_update plus the
// timestamp of every event) become ISO-8601 strings. Values that are already
// strings, or absent, are left untouched, which makes the function idempotent.
// The document is mutated in place and returned for convenience.
func NormalizeShipmentDocument(doc bson.M) bson.M {
	if id, ok := doc["_id"]; ok {
		doc["_id"] = idString(id)
	}

	for _, key := range []string{"eta", "last_update"} {
		if ts, ok := asTime(doc[key]); ok {
			doc[key] = ts.Format(time.RFC3339Nano)
		}
	}

	for _, entry := range asSlice(doc["events"]) {
		event, ok := asDocument(entry)
		if !ok {
			continue
		}
		if ts, ok := asTime(event["timestamp"]); ok {
			event["timestamp"] = ts.Format(time.RFC3339Nano)
		}
	}

	return doc
}

func idString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// asTime recognises the timestamp shapes the driver produces. Anything else
// (strings from a previous normalization pass, nil for absent fields) is
// reported as not-a-timestamp.
func asTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), true
	case primitive.DateTime:
		return t.Time().UTC(), true
	default:
		return time.Time{}, false
	}
}

func asSlice(v interface{}) []interface{} {
	switch s := v.(type) {
	case primitive.A:
		return s
	case []interface{}:
		return s
	default:
		return nil
	}
}

func asDocument(v interface{}) (bson.M, bool) {
	switch d := v.(type) {
	case bson.M:
		return d, true
	case map[string]interface{}:
		return d, true
	default:
		return nil, false
	}
}
