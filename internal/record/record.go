// Package record provides uniform access to map-shaped values in the two
// representations that flow through dq: plain map[string]any built by
// callers and the ordered yaml.MapSlice produced by document loading.
package record

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/goccy/go-yaml"
)

// Entry is a single key/value pair of a map-shaped value.
type Entry struct {
	Key   string
	Value any
}

// Entries returns the key/value pairs of a map-shaped value. MapSlice
// entries keep document order; plain map entries are sorted by key so
// iteration stays deterministic. The second return is false when the
// value is not map-shaped.
func Entries(value any) ([]Entry, bool) {
	switch current := value.(type) {
	case yaml.MapSlice:
		entries := make([]Entry, 0, len(current))
		for _, item := range current {
			entries = append(entries, Entry{Key: keyString(item.Key), Value: item.Value})
		}
		return entries, true
	case map[string]any:
		keys := make([]string, 0, len(current))
		for key := range current {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		entries := make([]Entry, 0, len(current))
		for _, key := range keys {
			entries = append(entries, Entry{Key: key, Value: current[key]})
		}
		return entries, true
	}

	reflected := reflect.ValueOf(value)
	if !reflected.IsValid() || reflected.Kind() != reflect.Map {
		return nil, false
	}

	entries := make([]Entry, 0, reflected.Len())
	for _, key := range reflected.MapKeys() {
		entries = append(entries, Entry{
			Key:   keyString(key.Interface()),
			Value: reflected.MapIndex(key).Interface(),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	return entries, true
}

// IsMap reports whether the value is map-shaped.
func IsMap(value any) bool {
	switch value.(type) {
	case yaml.MapSlice, map[string]any:
		return true
	}

	reflected := reflect.ValueOf(value)
	return reflected.IsValid() && reflected.Kind() == reflect.Map
}

// Get returns the value stored under key, with a second return
// reporting whether the key exists.
func Get(value any, key string) (any, bool) {
	switch current := value.(type) {
	case yaml.MapSlice:
		for _, item := range current {
			if keyString(item.Key) == key {
				return item.Value, true
			}
		}
		return nil, false
	case map[string]any:
		found, ok := current[key]
		return found, ok
	}

	entries, ok := Entries(value)
	if !ok {
		return nil, false
	}
	for _, entry := range entries {
		if entry.Key == key {
			return entry.Value, true
		}
	}

	return nil, false
}

// Keys returns the keys of a map-shaped value in Entries order.
func Keys(value any) ([]string, bool) {
	entries, ok := Entries(value)
	if !ok {
		return nil, false
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.Key)
	}

	return keys, true
}

// Len returns the number of entries in a map-shaped value.
func Len(value any) (int, bool) {
	switch current := value.(type) {
	case yaml.MapSlice:
		return len(current), true
	case map[string]any:
		return len(current), true
	}

	reflected := reflect.ValueOf(value)
	if !reflected.IsValid() || reflected.Kind() != reflect.Map {
		return 0, false
	}

	return reflected.Len(), true
}

// Plain deep-converts a value into plain map[string]any / []any shapes.
// Ordered MapSlice maps lose their ordering; callers use Plain to hand
// data to libraries that only understand plain shapes.
func Plain(value any) any {
	switch current := value.(type) {
	case yaml.MapSlice:
		plain := make(map[string]any, len(current))
		for _, item := range current {
			plain[keyString(item.Key)] = Plain(item.Value)
		}
		return plain
	case map[string]any:
		plain := make(map[string]any, len(current))
		for key, item := range current {
			plain[key] = Plain(item)
		}
		return plain
	case []any:
		plain := make([]any, len(current))
		for i, item := range current {
			plain[i] = Plain(item)
		}
		return plain
	case string, []byte:
		return current
	}

	reflected := reflect.ValueOf(value)
	if !reflected.IsValid() {
		return value
	}

	switch reflected.Kind() {
	case reflect.Map:
		plain := make(map[string]any, reflected.Len())
		for _, key := range reflected.MapKeys() {
			plain[keyString(key.Interface())] = Plain(reflected.MapIndex(key).Interface())
		}
		return plain
	case reflect.Slice, reflect.Array:
		plain := make([]any, reflected.Len())
		for i := 0; i < reflected.Len(); i++ {
			plain[i] = Plain(reflected.Index(i).Interface())
		}
		return plain
	default:
		return value
	}
}

func keyString(key any) string {
	if text, ok := key.(string); ok {
		return text
	}
	return fmt.Sprint(key)
}
