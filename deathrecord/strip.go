package deathrecord

import (
	"encoding/json"
	"fmt"
)

// StripEmpty returns a copy of a JSON-like tree (maps, slices, scalars) with
// every absent attribute removed: nils, empty strings, and maps or slices
// that end up empty after their own children are stripped. Booleans and
// numbers are kept regardless of value. The operation is idempotent.
func StripEmpty(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, child := range val {
			stripped := StripEmpty(child)
			if isAbsent(stripped) {
				continue
			}
			out[key] = stripped
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, child := range val {
			stripped := StripEmpty(child)
			if isAbsent(stripped) {
				continue
			}
			out = append(out, stripped)
		}
		return out
	default:
		return v
	}
}

func isAbsent(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	default:
		return false
	}
}

// ToDocument serializes a typed resource tree into its generic nested
// key-value form and strips absent attributes from the whole structure
func ToDocument(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to rebuild document tree: %w", err)
	}
	stripped, ok := StripEmpty(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document stripped to nothing")
	}
	return stripped, nil
}
