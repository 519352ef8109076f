// File: lixenwraith/ini/helper.go
package ini

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// flattenMap converts a nested map[string]any to a flat map with dot-notation keys.
func flattenMap(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)

	for key, value := range nested {
		newPath := key
		if prefix != "" {
			newPath = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			for subPath, subValue := range flattenMap(nestedMap, newPath) {
				flat[subPath] = subValue
			}
		} else {
			flat[newPath] = value
		}
	}

	return flat
}

// sortedKeys returns the keys of m in lexical order.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// stringify renders a decoded TOML, YAML or JSON value as record text,
// using the same conventions as Format. Arrays become comma-separated lists.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return Format(v)
	case int:
		return Format(v)
	case int64:
		return Format(v)
	case uint64:
		return Format(v)
	case float64:
		return Format(v)
	case json.Number:
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// importable reports whether a decoded value can be stored as record text:
// a scalar, or an array of scalars.
func importable(value any) bool {
	switch v := value.(type) {
	case map[string]any, map[any]any, []map[string]any:
		return false
	case []any:
		for _, item := range v {
			switch item.(type) {
			case map[string]any, map[any]any, []map[string]any, []any:
				return false
			}
		}
	}
	return true
}
