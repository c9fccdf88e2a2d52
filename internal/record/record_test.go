package record

import (
	"reflect"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestEntriesKeepsMapSliceOrder(t *testing.T) {
	t.Parallel()

	value := yaml.MapSlice{
		{Key: "zebra", Value: 1},
		{Key: "apple", Value: 2},
		{Key: "mango", Value: 3},
	}

	entries, ok := Entries(value)
	if !ok {
		t.Fatal("Entries(MapSlice) ok = false, want true")
	}

	want := []Entry{
		{Key: "zebra", Value: 1},
		{Key: "apple", Value: 2},
		{Key: "mango", Value: 3},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("Entries(MapSlice) = %v, want %v", entries, want)
	}
}

func TestEntriesSortsPlainMaps(t *testing.T) {
	t.Parallel()

	entries, ok := Entries(map[string]any{"b": 2, "a": 1, "c": 3})
	if !ok {
		t.Fatal("Entries(map) ok = false, want true")
	}

	want := []Entry{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3}}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("Entries(map) = %v, want %v", entries, want)
	}
}

func TestEntriesTypedMapsAndNonMaps(t *testing.T) {
	t.Parallel()

	entries, ok := Entries(map[string]int{"y": 2, "x": 1})
	if !ok {
		t.Fatal("Entries(map[string]int) ok = false, want true")
	}
	want := []Entry{{Key: "x", Value: 1}, {Key: "y", Value: 2}}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("Entries(map[string]int) = %v, want %v", entries, want)
	}

	if _, ok := Entries([]any{1, 2}); ok {
		t.Fatal("Entries(slice) ok = true, want false")
	}
	if _, ok := Entries("text"); ok {
		t.Fatal("Entries(string) ok = true, want false")
	}
	if _, ok := Entries(nil); ok {
		t.Fatal("Entries(nil) ok = true, want false")
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  any
		key    string
		want   any
		wantOK bool
	}{
		{
			name:   "mapslice_hit",
			value:  yaml.MapSlice{{Key: "name", Value: "switch1"}},
			key:    "name",
			want:   "switch1",
			wantOK: true,
		},
		{
			name:   "mapslice_miss",
			value:  yaml.MapSlice{{Key: "name", Value: "switch1"}},
			key:    "addr",
			wantOK: false,
		},
		{
			name:   "plain_map",
			value:  map[string]any{"port": 22},
			key:    "port",
			want:   22,
			wantOK: true,
		},
		{
			name:   "typed_map",
			value:  map[string]int{"port": 22},
			key:    "port",
			want:   22,
			wantOK: true,
		},
		{
			name:   "int_keys_stringified",
			value:  yaml.MapSlice{{Key: 10, Value: "ten"}},
			key:    "10",
			want:   "ten",
			wantOK: true,
		},
		{
			name:   "non_map",
			value:  []any{"a"},
			key:    "a",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Get(tt.value, tt.key)
			if ok != tt.wantOK {
				t.Fatalf("Get(%v, %q) ok = %v, want %v", tt.value, tt.key, ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Get(%v, %q) = %v, want %v", tt.value, tt.key, got, tt.want)
			}
		})
	}
}

func TestKeysAndLen(t *testing.T) {
	t.Parallel()

	value := yaml.MapSlice{
		{Key: "b", Value: 1},
		{Key: "a", Value: 2},
	}

	keys, ok := Keys(value)
	if !ok || !reflect.DeepEqual(keys, []string{"b", "a"}) {
		t.Fatalf("Keys(MapSlice) = (%v, %v), want ([b a], true)", keys, ok)
	}

	length, ok := Len(value)
	if !ok || length != 2 {
		t.Fatalf("Len(MapSlice) = (%d, %v), want (2, true)", length, ok)
	}

	if _, ok := Len("scalar"); ok {
		t.Fatal("Len(scalar) ok = true, want false")
	}
}

func TestPlain(t *testing.T) {
	t.Parallel()

	value := yaml.MapSlice{
		{Key: "hosts", Value: []any{
			yaml.MapSlice{{Key: "name", Value: "a"}, {Key: "port", Value: 22}},
		}},
		{Key: "count", Value: 1},
	}

	want := map[string]any{
		"hosts": []any{
			map[string]any{"name": "a", "port": 22},
		},
		"count": 1,
	}

	if got := Plain(value); !reflect.DeepEqual(got, want) {
		t.Fatalf("Plain() = %#v, want %#v", got, want)
	}

	if got := Plain("text"); got != "text" {
		t.Fatalf("Plain(text) = %v, want text", got)
	}
	if got := Plain(nil); got != nil {
		t.Fatalf("Plain(nil) = %v, want nil", got)
	}
}
