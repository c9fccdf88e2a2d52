package number

import (
	"encoding/json"
	"testing"
)

func TestCoerceFloat64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		ok    bool
		want  float64
	}{
		{name: "int", input: int(10), ok: true, want: 10},
		{name: "int64", input: int64(-3), ok: true, want: -3},
		{name: "uint16", input: uint16(3), ok: true, want: 3},
		{name: "uint64", input: uint64(9000), ok: true, want: 9000},
		{name: "float32", input: float32(1.5), ok: true, want: 1.5},
		{name: "float64", input: 12.5, ok: true, want: 12.5},
		{name: "json_number", input: json.Number("42"), ok: true, want: 42},
		{name: "json_number_invalid", input: json.Number("4x"), ok: false, want: 0},
		{name: "numeric_string", input: "3.5", ok: true, want: 3.5},
		{name: "padded_string", input: "  7 ", ok: true, want: 7},
		{name: "negative_string", input: "-2", ok: true, want: -2},
		{name: "bool", input: true, ok: false, want: 0},
		{name: "word", input: "seven", ok: false, want: 0},
		{name: "nil", input: nil, ok: false, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoerceFloat64(tt.input)
			if ok != tt.ok {
				t.Fatalf("CoerceFloat64(%v) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Fatalf("CoerceFloat64(%v) value = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
