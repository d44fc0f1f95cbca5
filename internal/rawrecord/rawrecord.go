// Package rawrecord provides a permissive view over the JSON payloads
// returned by the aggregator and stored in the offline snapshot. Records are
// of unknown but bounded shape, so every accessor probes a list of candidate
// keys and tolerates missing or mistyped fields instead of failing.
package rawrecord

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is one raw account or transaction object as decoded from JSON.
type Record map[string]any

// Decode parses a JSON object into a Record.
func Decode(data []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Has returns true if the key is present, whatever its value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// String returns the first non-empty string value among the candidate keys.
// Non-string values are skipped.
func (r Record) String(keys ...string) string {
	for _, key := range keys {
		if s, ok := r[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// Number returns the first numeric value among the candidate keys. It accepts
// JSON numbers, numeric strings and json.Number values.
func (r Record) Number(keys ...string) (decimal.Decimal, bool) {
	for _, key := range keys {
		v, ok := r[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return decimal.NewFromFloat(n), true
		case int:
			return decimal.NewFromInt(int64(n)), true
		case int64:
			return decimal.NewFromInt(n), true
		case json.Number:
			if dec, err := decimal.NewFromString(n.String()); err == nil {
				return dec, true
			}
		case string:
			if dec, err := decimal.NewFromString(strings.TrimSpace(n)); err == nil {
				return dec, true
			}
		}
	}
	return decimal.Zero, false
}

// Bool returns the first boolean value among the candidate keys.
func (r Record) Bool(keys ...string) bool {
	for _, key := range keys {
		if b, ok := r[key].(bool); ok {
			return b
		}
	}
	return false
}

// Object returns the nested object under key, or nil if the key is missing
// or does not hold an object.
func (r Record) Object(key string) Record {
	if m, ok := r[key].(map[string]any); ok {
		return Record(m)
	}
	return nil
}

// Records returns the array of objects under key. Array elements that are
// not objects are skipped.
func (r Record) Records(key string) []Record {
	arr, ok := r[key].([]any)
	if !ok {
		return nil
	}
	records := make([]Record, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			records = append(records, Record(m))
		}
	}
	return records
}
