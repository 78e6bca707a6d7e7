package formats

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// JSONParser parses JSON check reports.
//
// Two layouts are accepted: an array of record objects, or an object keyed
// by package name. For the keyed layout the key order is the record order
// and a missing moduleName is taken from the key.
type JSONParser struct{}

// Parse decodes JSON report content.
//
// It performs the following operations:
//   - Step 1: Detect the top-level layout (array or object)
//   - Step 2: For arrays, decode records directly
//   - Step 3: For objects, unmarshal into an ordered map to keep key order
//   - Step 4: Decode each value into a Record, defaulting the name to its key
//
// Parameters:
//   - content: The raw JSON bytes
//
// Returns:
//   - []Record: The decoded records in report order
//   - error: Returns an error if the JSON is invalid
func (p *JSONParser) Parse(content []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("invalid JSON: empty report")
	}

	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return records, nil
	}

	data := orderedmap.New()
	if err := json.Unmarshal(trimmed, data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if wrapped, ok := data.Get("packages"); ok {
		if _, isList := wrapped.([]interface{}); isList && len(data.Keys()) == 1 {
			return decodeJSONValue[[]Record](wrapped)
		}
	}

	records := make([]Record, 0, len(data.Keys()))
	for _, key := range data.Keys() {
		value, _ := data.Get(key)
		record, err := decodeJSONValue[Record](value)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for %s: %w", key, err)
		}
		if record.Name == "" {
			record.Name = key
		}
		records = append(records, record)
	}
	return records, nil
}

// decodeJSONValue re-encodes a generic value taken from an ordered map and
// decodes it into T.
func decodeJSONValue[T any](value interface{}) (T, error) {
	var out T
	raw, err := json.Marshal(value)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}
